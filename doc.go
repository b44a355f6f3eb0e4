// Package raytracer is the geometric and numeric kernel of a ray tracer.
//
// It provides homogeneous tuple algebra that keeps points and vectors
// apart, fixed-size matrices with determinants, inverses and affine
// transforms, an RGB color model with 8-bit quantization, and a canvas that
// rasterizes simulated trajectories.
//
// # Points and vectors
//
// [Point] and [Vector] are distinct types, so only geometrically meaningful
// algebra compiles: a point plus a vector is a point, the difference of two
// points is a vector, and two points cannot be added.
//
//	p := raytracer.NewPoint(1, 2, 3)
//	v := raytracer.NewVector(0, 1, 0)
//	q := p.Add(v)      // point(1, 3, 3)
//	d := q.Sub(p)      // vector(0, 1, 0)
//
// [Tuple] is the homogeneous (x, y, z, w) form used by matrix products.
// Its operations check the w discriminator at runtime and report misuse
// with [ErrInvalidOperand].
//
// # Matrices and transforms
//
// [Matrix2], [Matrix3] and [Matrix4] are value types. Multiplication is
// only defined between matrices of the same size. Inverses use the
// adjugate method and fail with [ErrNotInvertible] for singular matrices.
//
// Transforms are built with [Translation], [Scaling], [RotationX],
// [RotationY], [RotationZ] and [Shearing], and composed in application
// order with [Chain]:
//
//	m := raytracer.Chain(
//		raytracer.RotationX(math.Pi/2),
//		raytracer.Scaling(5, 5, 5),
//		raytracer.Translation(10, 5, 7),
//	)
//	p := m.MulPoint(raytracer.NewPoint(1, 0, 1)) // point(15, 0, 7)
//
// Translations move points and leave vectors unchanged.
//
// # Colors and canvases
//
// [Color] arithmetic is unbounded; [Quantize] clamps and rounds to a
// [Pixel] only when a color is written. A [Canvas] is a top-down pixel
// buffer whose out-of-bounds writes are clipped. It implements
// [image.Image] and can be saved with [Save] as PPM, PNG, JPEG, BMP or TIFF.
//
// # Trajectories
//
// [Simulate] integrates a projectile through a constant drag vector and
// paints its path:
//
//	c := raytracer.NewCanvas(900, 550)
//	res, err := raytracer.Simulate(c, raytracer.DefaultSimConfig())
//	if err != nil {
//		// handle error
//	}
//	_ = raytracer.Save("arc.png", c)
//
// The [Result] reports whether the projectile landed or left the canvas.
package raytracer
