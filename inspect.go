package cose

// HeaderSummary is a display-friendly snapshot of one HeaderSet, used by
// Inspect. Unlike HeaderSet it copies out of LabelList's fixed-capacity
// arrays into plain slices, since it is meant for marshaling (e.g. to YAML
// by the CLI's inspect command), not for the zero-allocation hot path.
type HeaderSummary struct {
	AlgID         Algorithm `yaml:"alg_id,omitempty"`
	AlgName       string    `yaml:"alg_name,omitempty"`
	Kid           []byte    `yaml:"kid,omitempty"`
	IV            []byte    `yaml:"iv,omitempty"`
	PartialIV     []byte    `yaml:"partial_iv,omitempty"`
	UnknownInts   []int64   `yaml:"unknown_int_labels,omitempty"`
	UnknownBytes  [][]byte  `yaml:"unknown_bstr_labels,omitempty"`
	CriticalInts  []int64   `yaml:"critical_int_labels,omitempty"`
	CriticalBytes [][]byte  `yaml:"critical_bstr_labels,omitempty"`
}

func summarizeHeaderSet(hs HeaderSet) HeaderSummary {
	s := HeaderSummary{
		AlgID:     hs.AlgID,
		AlgName:   hs.AlgID.String(),
		Kid:       hs.Kid,
		IV:        hs.IV,
		PartialIV: hs.PartialIV,
	}
	if n := hs.Unknown.Ints(); len(n) > 0 {
		s.UnknownInts = append([]int64{}, n...)
	}
	if n := hs.Unknown.Bytes(); len(n) > 0 {
		s.UnknownBytes = append([][]byte{}, n...)
	}
	if n := hs.Critical.Ints(); len(n) > 0 {
		s.CriticalInts = append([]int64{}, n...)
	}
	if n := hs.Critical.Bytes(); len(n) > 0 {
		s.CriticalBytes = append([][]byte{}, n...)
	}
	return s
}

// InspectResult is the parsed shape of a COSE_Sign1 message, returned by
// Inspect without attempting to verify its signature.
type InspectResult struct {
	Protected    HeaderSummary `yaml:"protected"`
	Unprotected  HeaderSummary `yaml:"unprotected"`
	PayloadLen   int           `yaml:"payload_len"`
	SignatureLen int           `yaml:"signature_len"`
}

// Inspect decodes message as a COSE_Sign1_Tagged structure and parses both
// header maps, returning a human-readable summary. It performs no signature
// verification and does not require a key; it is a read-only diagnostic for
// tooling such as tcosecheck's inspect subcommand.
func Inspect(message []byte) (InspectResult, error) {
	env, err := decodeEnvelope(message)
	if err != nil {
		return InspectResult{}, err
	}
	protected, err := parseProtected(env.protectedBstr)
	if err != nil {
		return InspectResult{}, err
	}
	return InspectResult{
		Protected:    summarizeHeaderSet(protected),
		Unprotected:  summarizeHeaderSet(env.unprotected),
		PayloadLen:   len(env.payload),
		SignatureLen: len(env.signature),
	}, nil
}
