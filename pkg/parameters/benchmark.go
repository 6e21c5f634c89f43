package parameters

// Meijaard2007Benchmark returns the reference parameter values published in
// Table 1 of Meijaard et al. 2007, with the forward speed set to 5 m/s. Body
// B combines the rear frame and rider.
func Meijaard2007Benchmark() *Meijaard2007ParameterSet {
	set, err := NewMeijaard2007ParameterSet(map[string]float64{
		"IBxx": 9.2,
		"IBxz": 2.4,
		"IByy": 11.0,
		"IBzz": 2.8,
		"IFxx": 0.1405,
		"IFyy": 0.28,
		"IHxx": 0.05892,
		"IHxz": -0.00756,
		"IHyy": 0.06,
		"IHzz": 0.00708,
		"IRxx": 0.0603,
		"IRyy": 0.12,
		"c":    0.08,
		"g":    9.81,
		"lam":  0.3141592653589793, // pi/10
		"mB":   85.0,
		"mF":   3.0,
		"mH":   4.0,
		"mR":   2.0,
		"rF":   0.35,
		"rR":   0.3,
		"v":    5.0,
		"w":    1.02,
		"xB":   0.3,
		"xH":   0.9,
		"zB":   -0.9,
		"zH":   -0.7,
	}, true)
	if err != nil {
		// The table above satisfies its own schema.
		panic(err)
	}
	return set
}
