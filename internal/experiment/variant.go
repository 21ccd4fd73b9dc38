package experiment

import "strings"

// Variant is a repair algorithm known to the simulator.
type Variant int

const (
	ExploitRepair Variant = iota
	MutiPipeline
	Exr
	PivotRepair
	PPT
	RP
	PPR
)

var variantCodes = map[Variant]string{
	ExploitRepair: "b",
	MutiPipeline:  "v",
	Exr:           "e",
	PivotRepair:   "f",
	PPT:           "p",
	RP:            "r",
	PPR:           "j",
}

var variantNames = map[Variant]string{
	ExploitRepair: "ExploitRepair",
	MutiPipeline:  "MutiPipeline",
	Exr:           "Exr",
	PivotRepair:   "PivotRepair",
	PPT:           "PPT",
	RP:            "RP",
	PPR:           "PPR",
}

// Variants lists every known variant in declaration order.
var Variants = []Variant{ExploitRepair, MutiPipeline, Exr, PivotRepair, PPT, RP, PPR}

func (v Variant) Code() string { return variantCodes[v] }

func (v Variant) Name() string { return variantNames[v] }

// LookupCode finds the variant with the given single-letter code.
func LookupCode(code string) (Variant, bool) {
	for _, v := range Variants {
		if variantCodes[v] == code {
			return v, true
		}
	}
	return 0, false
}

// NormalizeCode turns a code or a variant name (any case) into the
// variant's code. Anything unrecognized is returned trimmed but otherwise
// untouched; the encoder handles it with the fallback schema.
func NormalizeCode(s string) string {
	s = strings.TrimSpace(s)
	for _, v := range Variants {
		if strings.EqualFold(variantNames[v], s) {
			return variantCodes[v]
		}
	}
	return s
}

// CodeName returns the variant name for a code, or "unknown".
func CodeName(code string) string {
	if v, ok := LookupCode(code); ok {
		return v.Name()
	}
	return "unknown"
}
