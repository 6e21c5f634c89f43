package parameters

import "math"

// tensorFromPrincipal rotates a body's diagonal principal inertia matrix
// back into the global XZ frame. This is the algebraic inverse of
// DecomposePlanarInertia; round-tripping a tensor through the decomposition
// and this reconstruction reproduces it to numerical tolerance.
func tensorFromPrincipal(mass float64, r PrincipalRadii) (ixx, ixz, iyy, izz float64) {
	sin, cos := math.Sincos(r.Alpha)
	kaa2 := r.Kaa * r.Kaa
	kbb2 := r.Kbb * r.Kbb

	ixx = mass * (kaa2*cos*cos + kbb2*sin*sin)
	izz = mass * (kaa2*sin*sin + kbb2*cos*cos)
	ixz = mass * (kbb2 - kaa2) * sin * cos
	iyy = mass * r.Kyy * r.Kyy
	return ixx, ixz, iyy, izz
}

// bodyTensor reconstructs the four planar tensor components of one body from
// a principal parameter mapping. The mapping must carry the body's mass,
// radii, and axis tilt (derived extras included for wheels).
func bodyTensor(p map[string]float64, body string) (ixx, ixz, iyy, izz float64) {
	return tensorFromPrincipal(p["m"+body], PrincipalRadii{
		Kaa:   p["k"+body+"aa"],
		Kbb:   p["k"+body+"bb"],
		Kyy:   p["k"+body+"yy"],
		Alpha: p["alpha"+body],
	})
}

// ConvertPrincipalToBenchmark converts a principal (Moore 2019) parameter
// mapping, extended with its derived values, into a benchmark (Meijaard
// 2007) parameter mapping. The rider P is rigidly folded into the rear frame
// D to form body B, with the combined inertia taken about the combined mass
// center via the parallel axis theorem. The input mapping is not mutated.
func ConvertPrincipalToBenchmark(p map[string]float64) map[string]float64 {
	iDxx, iDxz, iDyy, iDzz := bodyTensor(p, "D")
	iPxx, iPxz, iPyy, iPzz := bodyTensor(p, "P")
	iHxx, iHxz, iHyy, iHzz := bodyTensor(p, "H")
	iFxx, _, iFyy, _ := bodyTensor(p, "F")
	iRxx, _, iRyy, _ := bodyTensor(p, "R")

	mD, mP := p["mD"], p["mP"]
	mB := mD + mP
	xB := (mD*p["xD"] + mP*p["xP"]) / mB
	zB := (mD*p["zD"] + mP*p["zP"]) / mB

	// Parallel axis terms moving D's and P's tensors to the combined mass
	// center.
	dxD, dzD := p["xD"]-xB, p["zD"]-zB
	dxP, dzP := p["xP"]-xB, p["zP"]-zB

	iBxx := iDxx + iPxx + mD*dzD*dzD + mP*dzP*dzP
	iBzz := iDzz + iPzz + mD*dxD*dxD + mP*dxP*dxP
	iBxz := iDxz + iPxz - mD*dxD*dzD - mP*dxP*dzP
	iByy := iDyy + iPyy + mD*(dxD*dxD+dzD*dzD) + mP*(dxP*dxP+dzP*dzP)

	return map[string]float64{
		"IBxx": iBxx,
		"IBxz": iBxz,
		"IByy": iByy,
		"IBzz": iBzz,
		"IFxx": iFxx,
		"IFyy": iFyy,
		"IHxx": iHxx,
		"IHxz": iHxz,
		"IHyy": iHyy,
		"IHzz": iHzz,
		"IRxx": iRxx,
		"IRyy": iRyy,
		"c":    p["c"],
		"g":    p["g"],
		"lam":  p["lam"],
		"mB":   mB,
		"mF":   p["mF"],
		"mH":   p["mH"],
		"mR":   p["mR"],
		"rF":   p["rF"],
		"rR":   p["rR"],
		"v":    p["v"],
		"w":    p["w"],
		"xB":   xB,
		"xH":   p["xH"],
		"zB":   zB,
		"zH":   p["zH"],
	}
}
