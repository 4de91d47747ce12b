package hal

// argbToRGBA converts packed A,R,G,B samples into the R,G,B,A byte order the
// drawing backends expect. Source rows may carry padding (stride >= width*4);
// the destination is written densely.
func argbToRGBA(dst, src []byte, width, height, stride int) {
	for y := 0; y < height; y++ {
		row := y * stride
		out := y * width * 4
		for x := 0; x < width; x++ {
			i := row + x*4
			j := out + x*4
			dst[j+0] = src[i+1]
			dst[j+1] = src[i+2]
			dst[j+2] = src[i+3]
			dst[j+3] = src[i+0]
		}
	}
}
