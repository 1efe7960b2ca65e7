package epistemic

// MuddyChildrenExample builds the two-child muddy children scenario.
// Propositions ma/mb mean "child a/b is muddy". Each child sees the other's
// forehead but not their own, so each relates the worlds that differ only
// in their own muddiness. Relations are reflexive and symmetric (S5).
func MuddyChildrenExample() *Model {
	m := NewModel()

	w0 := m.AddWorld(map[string]bool{"ma": true, "mb": true})
	w1 := m.AddWorld(map[string]bool{"ma": true})
	w2 := m.AddWorld(map[string]bool{"mb": true})
	w3 := m.AddWorld(nil)

	// a cannot tell whether a is muddy
	m.AddTransition(w0, w2, "a")
	m.AddTransition(w2, w0, "a")
	m.AddTransition(w1, w3, "a")
	m.AddTransition(w3, w1, "a")

	// b cannot tell whether b is muddy
	m.AddTransition(w0, w1, "b")
	m.AddTransition(w1, w0, "b")
	m.AddTransition(w2, w3, "b")
	m.AddTransition(w3, w2, "b")

	for _, w := range []int{w0, w1, w2, w3} {
		m.AddTransition(w, w, "a", "b")
	}

	return m
}

// CardDealExample builds the three-card deal: red, white and blue dealt to
// agents a, b and c, one card each. Proposition "ar" means a holds red,
// "bw" means b holds white, and so on. Each agent knows only its own card,
// so it relates the deals where its own card is unchanged.
func CardDealExample() *Model {
	m := NewModel()

	deals := [][3]string{
		{"r", "w", "b"},
		{"r", "b", "w"},
		{"w", "r", "b"},
		{"w", "b", "r"},
		{"b", "r", "w"},
		{"b", "w", "r"},
	}
	agents := []string{"a", "b", "c"}

	for _, deal := range deals {
		val := make(map[string]bool)
		for pos, agent := range agents {
			val[agent+deal[pos]] = true
		}
		m.AddWorld(val)
	}

	for pos, agent := range agents {
		for i := range deals {
			for j := range deals {
				if deals[i][pos] == deals[j][pos] {
					m.AddTransition(i, j, agent)
				}
			}
		}
	}

	return m
}
