package synth

import "math"

// Fractional-N modulus limits.
const (
	// MinMod is the smallest usable fractional modulus.
	MinMod = 2

	// MaxMod is the largest fractional modulus the MOD field can hold.
	MaxMod = 2097151
)

// MaxR is the largest reference divider the R field can hold.
const MaxR = 8191

// MinN is the smallest divider ratio the chip accepts in any DSM mode.
const MinN = 24

// IntegerOnlyN is the divider ratio above which only integer-N operation is
// possible.
const IntegerOnlyN = 512

// MaxCalibratorFrequency is the highest rate the VCO calibrator clock may
// run at, in Hz. Running at this rate gives the fastest calibration.
const MaxCalibratorFrequency = 250e3

// ReferenceClockPath selects how the reference clock is scaled before the R
// divider. Values are the raw REF_PATH_SEL codes.
type ReferenceClockPath uint32

const (
	RefPathDirect ReferenceClockPath = iota
	RefPathDoubled
	RefPathHalved
	RefPathQuartered
)

func (p ReferenceClockPath) String() string {
	switch p {
	case RefPathDirect:
		return "direct"
	case RefPathDoubled:
		return "doubled"
	case RefPathHalved:
		return "halved"
	case RefPathQuartered:
		return "quartered"
	}
	return "unknown"
}

// DSMOrder is the delta-sigma modulator order. Values are the raw
// DSM_ORDER codes. Third order is the recommended setting.
type DSMOrder uint32

const (
	ThirdOrder DSMOrder = iota
	SecondOrder
	FirstOrder
	FourthOrder
)

func (o DSMOrder) String() string {
	switch o {
	case ThirdOrder:
		return "third order"
	case SecondOrder:
		return "second order"
	case FirstOrder:
		return "first order"
	case FourthOrder:
		return "fourth order"
	}
	return "unknown"
}

// PLLPath selects the signal path from the VCO into the PLL. Halved must be
// used for output frequencies above 6 GHz.
//
// The mapping between the enum and the PLL_SEL register bit is
// counter-intuitive but chip-verified: a set PLL_SEL bit reads back as the
// Direct path and selects the doubled output branch, a clear bit reads back
// as Halved. Do not "fix" this; the hardware defines it.
type PLLPath uint8

const (
	PLLPathDirect PLLPath = iota
	PLLPathHalved
)

func (p PLLPath) String() string {
	if p == PLLPathHalved {
		return "halved"
	}
	return "direct"
}

// PFDFrequency computes the phase-frequency detector frequency in Hz from
// the reference frequency, the reference path scaling and the R divider.
func PFDFrequency(refFreq float32, path ReferenceClockPath, r uint32) float32 {
	var first float32
	switch path {
	case RefPathDirect:
		first = refFreq
	case RefPathDoubled:
		first = refFreq * 2
	case RefPathHalved:
		first = refFreq / 2
	case RefPathQuartered:
		first = refFreq / 4
	}
	return first / float32(r)
}

// OutputFrequency computes the RF1 output frequency in Hz from the divider
// register values.
//
// The total ratio is n = nInt + frac/mod + d/(2*mod), where d is 1 when
// dithering is enabled (dithering shifts the average DSM output by half a
// step). pllSel is the raw PLL_SEL bit; when set, the output comes from the
// doubled branch.
func OutputFrequency(pfd float32, nInt, frac, mod uint32, dithering, pllSel bool) float32 {
	var dith float32
	if dithering {
		dith = 1
	}
	m := float32(mod)
	a := float32(frac) / m
	twoM := 2 * m
	b := dith / twoM
	n := float32(nInt) + a
	n += b
	f := pfd * n
	if pllSel {
		f *= 2
	}
	return f
}

// ValidateNRange checks a divider ratio against the admissible interval for
// the given DSM order. The interval shrinks as the order grows because the
// modulator needs headroom around the integer part.
func ValidateNRange(order DSMOrder, n float32) error {
	var min, max float32
	switch order {
	case ThirdOrder:
		min, max = 27, 507
	case SecondOrder:
		min, max = 25, 509
	case FirstOrder:
		min, max = 24, 510
	case FourthOrder:
		min, max = 31, 503
	}
	if n < min || n > max {
		return &DividerOutOfRangeError{Order: order, N: n, Min: min, Max: max}
	}
	return nil
}

// SolveDivider decomposes a divider ratio into the integer part N and the
// fractional numerator FRAC, with MOD pinned at MaxMod.
//
// Maximizing MOD keeps the FRAC/MOD ratio as fine as possible, which
// spreads DSM spur energy and minimizes the frequency error; this is a
// deliberate spur-minimization policy, not an arbitrary default. Callers
// that need a specific MOD must program FRAC and MOD through the low-level
// setters instead.
//
// When dithering is enabled the DSM average sits half a step high, so the
// solver pre-compensates: frac = round((2*fract(n)*MOD - 1) / 2).
//
// Ratios below MinN are not representable (*InvalidDividerRatioError) and
// ratios at or above IntegerOnlyN must have no fractional part
// (*IntegerOnlyError).
func SolveDivider(n float32, dithering bool) (nInt, frac uint32, err error) {
	if n < MinN {
		return 0, 0, &InvalidDividerRatioError{N: n}
	}
	ni := float32(math.Trunc(float64(n)))
	nf := n - ni
	if ni >= IntegerOnlyN && nf != 0 {
		return 0, 0, &IntegerOnlyError{N: n}
	}

	var dith float32
	if dithering {
		dith = 1
	}
	t := 2 * nf
	t = t * MaxMod
	t = t - dith
	t = t / 2

	// A zero fractional part with dithering enabled lands at -0.5; the
	// numerator cannot go below zero.
	r := math.Round(float64(t))
	if r < 0 {
		r = 0
	}
	return uint32(ni), uint32(r), nil
}

// SolveOutputFrequency picks the PLL path and divider ratio for a target
// output frequency given the current PFD frequency. Above 6 GHz the VCO
// signal must take the halved path into the PLL, so the ratio is solved for
// half the target.
func SolveOutputFrequency(f, pfd float32) (PLLPath, float32) {
	n := f / pfd
	if f > 6e9 {
		n = n / 2
		return PLLPathHalved, n
	}
	return PLLPathDirect, n
}

// ValidateReferencePath checks that a reference path selection is
// compatible with the reference frequency band and signaling type. The
// doubler is unusable above 25 MHz and never usable with a differential
// reference; high reference bands must be divided down before the PFD.
func ValidateReferencePath(refFreq float32, path ReferenceClockPath, differential bool) error {
	switch {
	case refFreq >= 400e6 && refFreq <= 800e6:
		if path != RefPathQuartered {
			return &ReferencePathError{
				RefFreq: refFreq,
				Path:    path,
				Reason:  "references above 400 MHz must use the quartered path",
			}
		}
	case refFreq >= 200e6:
		if path != RefPathHalved && path != RefPathQuartered {
			return &ReferencePathError{
				RefFreq: refFreq,
				Path:    path,
				Reason:  "references between 200 and 400 MHz must use the halved or quartered path",
			}
		}
	case refFreq >= 25e6:
		if path == RefPathDoubled {
			return &ReferencePathError{
				RefFreq: refFreq,
				Path:    path,
				Reason:  "references above 25 MHz cannot be doubled",
			}
		}
	}
	if differential && path == RefPathDoubled {
		return &ReferencePathError{
			RefFreq: refFreq,
			Path:    path,
			Reason:  "a differential reference cannot be doubled",
		}
	}
	return nil
}

// CalibratorFrequency computes the VCO calibrator clock in Hz from the PFD
// frequency and the calibrator divider.
func CalibratorFrequency(pfd float32, calDiv uint32) float32 {
	return pfd / float32(calDiv)
}

// CalibratorDivision computes the calibrator divider that runs the
// calibrator at its maximum rate for the given PFD frequency.
func CalibratorDivision(pfd float32) uint32 {
	return uint32(math.Floor(float64(pfd / MaxCalibratorFrequency)))
}
