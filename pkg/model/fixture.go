package model

// Reference returns a freshly built canonical instance. The harness builds
// it once per process and treats it as immutable for the duration of all
// benchmark runs.
func Reference() *TestObj {
	return &TestObj{
		FixedObject: FixedObject{
			IntArray:    []int32{0, 1, 2, 3, 4, 5, 6},
			FloatArray:  []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6},
			DoubleArray: []float64{3288398.238, 233e22, 289e-1, 0.928759872, 0.22222848, 0.1, 0.2, 0.3, 0.4},
		},
		FixedNameObject: FixedNameObject{
			Name0: "James",
			Name1: "Abraham",
			Name2: "Susan",
			Name3: "Frank",
			Name4: "Alicia",
		},
		AnotherObject: AnotherObject{
			String:        "here is some text",
			AnotherString: "Hello World",
			EscapedText:   `{"some key":"some string value"}`,
			Boolean:       false,
			NestedObject: NestedObject{
				V3s: []Vec3{
					{0.12345, 0.23456, 0.001345},
					{0.3894675, 97.39827, 297.92387},
					{18.18, 87.289, 2988.298},
				},
				ID: "298728949872",
			},
		},
		StringArray: []string{"Cat", "Dog", "Elephant", "Tiger"},
		String:      "Hello world",
		Number:      3.14,
		Boolean:     true,
		AnotherBool: false,
	}
}

// Checksum folds every field of o into a single accumulator: numeric values
// truncate to uint64, strings contribute their length, booleans contribute
// 0 or 1, and each Vec3 contributes the truncated sum of its components.
// The accumulation visits fields in declaration order. Every adapter's
// zero-copy traversal must reproduce this value for any given instance.
func (o *TestObj) Checksum() uint64 {
	var sum uint64
	for _, v := range o.FixedObject.IntArray {
		sum += uint64(int64(v))
	}
	for _, v := range o.FixedObject.FloatArray {
		sum += uint64(v)
	}
	for _, v := range o.FixedObject.DoubleArray {
		sum += uint64(v)
	}
	sum += uint64(len(o.FixedNameObject.Name0))
	sum += uint64(len(o.FixedNameObject.Name1))
	sum += uint64(len(o.FixedNameObject.Name2))
	sum += uint64(len(o.FixedNameObject.Name3))
	sum += uint64(len(o.FixedNameObject.Name4))
	sum += uint64(len(o.AnotherObject.String))
	sum += uint64(len(o.AnotherObject.AnotherString))
	sum += uint64(len(o.AnotherObject.EscapedText))
	if o.AnotherObject.Boolean {
		sum++
	}
	for _, v := range o.AnotherObject.NestedObject.V3s {
		sum += uint64(v.X + v.Y + v.Z)
	}
	sum += uint64(len(o.AnotherObject.NestedObject.ID))
	for _, s := range o.StringArray {
		sum += uint64(len(s))
	}
	sum += uint64(len(o.String))
	sum += uint64(o.Number)
	if o.Boolean {
		sum++
	}
	if o.AnotherBool {
		sum++
	}
	return sum
}
