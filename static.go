package navlocale

// Static is an Environment backed by fixed values.
type Static struct {
	List      []string
	Preferred string
	Legacy    string
}

// Languages returns a copy of s.List.
func (s Static) Languages() []string {
	if len(s.List) == 0 {
		return nil
	}
	out := make([]string, len(s.List))
	copy(out, s.List)

	return out
}

func (s Static) Language() string {
	return s.Preferred
}

func (s Static) UserLanguage() string {
	return s.Legacy
}
