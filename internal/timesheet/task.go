package timesheet

// Task holds the label shown for an Entry. A purely numeric label is a
// placeholder referring to a numbered description that may appear later in
// the log; any other label is descriptive.
type Task struct {
	label string
	set   bool
}

// SetLabel applies text to the task. Descriptive text always replaces the
// current label, while numeric text is only taken when nothing is set yet.
func (t *Task) SetLabel(text string) {
	if !isNumeric(text) {
		t.label = text
		t.set = true
		return
	}
	if !t.set {
		t.label = text
		t.set = true
	}
}

// Label returns the current label, or the empty string when none is set.
func (t *Task) Label() string {
	if t == nil {
		return ""
	}
	return t.label
}

// Placeholder reports whether the task currently holds a numeric reference.
func (t *Task) Placeholder() bool {
	return t != nil && t.set && isNumeric(t.label)
}

func (t *Task) String() string {
	return t.Label()
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
