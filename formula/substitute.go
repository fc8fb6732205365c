package formula

// SubstituteVariables returns the formula obtained by simultaneously
// replacing every variable that has an entry in sub with its mapped
// formula. Substituted subtrees are shared with the map, not copied.
// Panics if a key is not a variable name.
func (f *Formula) SubstituteVariables(sub map[string]*Formula) *Formula {
	for name := range sub {
		if !IsVariable(name) {
			panic("substitution key is not a variable name: " + name)
		}
	}
	return f.substitute(sub)
}

func (f *Formula) substitute(sub map[string]*Formula) *Formula {
	switch {
	case IsVariable(f.Root):
		if repl, ok := sub[f.Root]; ok {
			return repl
		}
		return f
	case IsUnary(f.Root):
		return &Formula{Root: f.Root, First: f.First.substitute(sub)}
	case IsBinary(f.Root):
		return &Formula{
			Root:   f.Root,
			First:  f.First.substitute(sub),
			Second: f.Second.substitute(sub),
		}
	default:
		return f
	}
}
