package glw

import "golang.org/x/image/math/f32"

func Vec3(v0, v1, v2 float32) f32.Vec3     { return f32.Vec3{v0, v1, v2} }
func Vec4(v0, v1, v2, v3 float32) f32.Vec4 { return f32.Vec4{v0, v1, v2, v3} }

// Vec3s flattens vertices for upload with FloatBuffer.
func Vec3s(vs ...f32.Vec3) []float32 {
	out := make([]float32, 0, 3*len(vs))
	for _, v := range vs {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}
