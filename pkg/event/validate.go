package event

import (
	"encoding/json"
)

// validateAnchor checks that a raw anchor is a JSON object carrying at
// least the i, s, and d keys. Its other content is left untouched.
func validateAnchor(a Anchor) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(a, &m); err != nil {
		return newError(ErrAnchorShape, "not a JSON object")
	}
	for _, k := range []string{"i", "s", "d"} {
		if _, ok := m[k]; !ok {
			return newError(ErrAnchorShape, "missing \""+k+"\"")
		}
	}
	return nil
}

func validateAnchors(anchors []Anchor) error {
	for _, a := range anchors {
		if err := validateAnchor(a); err != nil {
			return err
		}
	}
	return nil
}

func validateInception(f *InceptionFields) error {
	if f == nil {
		return newError(ErrMissingField, "icp")
	}
	if f.V == "" {
		return newError(ErrMissingField, "v")
	}
	if _, err := parseVersionString(f.V); err != nil {
		return err
	}
	if f.T != string(Inception) {
		return newError(ErrWrongType, f.T)
	}
	if f.D == "" {
		return newError(ErrMissingField, "d")
	}
	if f.I == "" {
		return newError(ErrMissingField, "i")
	}
	if f.I != f.D {
		return newError(ErrWrongType, "inception prefix must equal its own said")
	}
	if f.S != "0" {
		return newError(ErrBadSequence, f.S)
	}
	kt, err := parseThreshold(Inception, f.Kt)
	if err != nil {
		return newError(ErrThresholdRange, f.Kt)
	}
	if kt < 1 || kt > len(f.K) {
		return newError(ErrThresholdRange, "kt out of range")
	}
	nt, err := parseThreshold(Inception, f.Nt)
	if err != nil {
		return newError(ErrThresholdRange, f.Nt)
	}
	if nt < 0 || nt > len(f.N) {
		return newError(ErrThresholdRange, "nt out of range")
	}
	bt, err := parseThreshold(Inception, f.Bt)
	if err != nil {
		return newError(ErrThresholdRange, f.Bt)
	}
	if bt < 0 || bt > len(f.B) {
		return newError(ErrThresholdRange, "bt out of range")
	}
	return validateAnchors(f.A)
}

func validateRotation(f *RotationFields) error {
	if f == nil {
		return newError(ErrMissingField, "rot")
	}
	if f.V == "" {
		return newError(ErrMissingField, "v")
	}
	if _, err := parseVersionString(f.V); err != nil {
		return err
	}
	if f.T != string(Rotation) {
		return newError(ErrWrongType, f.T)
	}
	if f.D == "" {
		return newError(ErrMissingField, "d")
	}
	if f.I == "" {
		return newError(ErrMissingField, "i")
	}
	seq, err := parseSeq(f.S)
	if err != nil {
		return err
	}
	if seq == 0 {
		return newError(ErrBadSequence, "rotation sequence must be > 0")
	}
	if f.P == "" {
		return newError(ErrMissingField, "p")
	}
	kt, err := parseThreshold(Rotation, f.Kt)
	if err != nil {
		return newError(ErrThresholdRange, f.Kt)
	}
	if kt < 1 || kt > len(f.K) {
		return newError(ErrThresholdRange, "kt out of range")
	}
	nt, err := parseThreshold(Rotation, f.Nt)
	if err != nil {
		return newError(ErrThresholdRange, f.Nt)
	}
	if nt < 0 || nt > len(f.N) {
		return newError(ErrThresholdRange, "nt out of range")
	}
	if _, err := parseThreshold(Rotation, f.Bt); err != nil {
		return newError(ErrThresholdRange, f.Bt)
	}
	return validateAnchors(f.A)
}

func validateInteraction(f *InteractionFields) error {
	if f == nil {
		return newError(ErrMissingField, "ixn")
	}
	if f.V == "" {
		return newError(ErrMissingField, "v")
	}
	if _, err := parseVersionString(f.V); err != nil {
		return err
	}
	if f.T != string(Interaction) {
		return newError(ErrWrongType, f.T)
	}
	if f.D == "" {
		return newError(ErrMissingField, "d")
	}
	if f.I == "" {
		return newError(ErrMissingField, "i")
	}
	seq, err := parseSeq(f.S)
	if err != nil {
		return err
	}
	if seq == 0 {
		return newError(ErrBadSequence, "interaction sequence must be > 0")
	}
	if f.P == "" {
		return newError(ErrMissingField, "p")
	}
	return validateAnchors(f.A)
}
