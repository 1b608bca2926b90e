package event

import "encoding/json"

type typeProbe struct {
	T string `json:"t"`
}

// ParseEvent decodes raw canonical JSON into an Event, dispatching on
// its "t" field, and validates the result structurally.
func ParseEvent(raw []byte) (Event, error) {
	var probe typeProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Event{}, newError(ErrMalformedVersion, "not valid JSON")
	}

	var e Event
	switch Type(probe.T) {
	case Inception:
		f := &InceptionFields{}
		if err := json.Unmarshal(raw, f); err != nil {
			return Event{}, newError(ErrMalformedVersion, err.Error())
		}
		e = Event{Type: Inception, Icp: f}
	case Rotation:
		f := &RotationFields{}
		if err := json.Unmarshal(raw, f); err != nil {
			return Event{}, newError(ErrMalformedVersion, err.Error())
		}
		e = Event{Type: Rotation, Rot: f}
	case Interaction:
		f := &InteractionFields{}
		if err := json.Unmarshal(raw, f); err != nil {
			return Event{}, newError(ErrMalformedVersion, err.Error())
		}
		e = Event{Type: Interaction, Ixn: f}
	case DelegatedInception, DelegatedRotation:
		return Event{}, newError(ErrUnsupportedType, probe.T)
	default:
		return Event{}, newError(ErrUnknownEventType, probe.T)
	}

	if err := e.Validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}
