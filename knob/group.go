package knob

// GroupSet returns a begin/end tab pair with the supplied knobs between
// them, matching the host's open/close group convention. The closing
// marker is named "<name>_end" with an empty label.
func GroupSet(name, label string, grouped []Knob, startClosed bool) []Knob {
	begin := GroupBegin
	if startClosed {
		begin = GroupBeginClosed
	}

	out := make([]Knob, 0, len(grouped)+2)
	out = append(out, NewTabGroup(name, label, begin))
	out = append(out, grouped...)
	out = append(out, NewTabGroup(name+"_end", "", GroupEnd))

	return out
}
