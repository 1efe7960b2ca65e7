package epistemic

import "testing"

func TestMuddyChildren(t *testing.T) {
	m := MuddyChildrenExample()

	// At w0 both children are muddy. Each child sees the other's forehead
	// but cannot settle their own.
	if !mustEval(t, m, 0, Knows{Prop{"a"}, Prop{"mb"}}) {
		t.Error("Expected a to know that b is muddy")
	}
	if mustEval(t, m, 0, Knows{Prop{"a"}, Prop{"ma"}}) {
		t.Error("Expected a not to know its own muddiness")
	}
	if !mustEval(t, m, 0, Knows{Prop{"b"}, Prop{"ma"}}) {
		t.Error("Expected b to know that a is muddy")
	}

	// Together the children could settle everything: distributed
	// knowledge pins down the actual world.
	group := Group{Prop{"a"}, Prop{"b"}}
	if !mustEval(t, m, 0, Distributed{group, And{Prop{"ma"}, Prop{"mb"}}}) {
		t.Error("Expected distributed knowledge of both muddy facts")
	}

	// Neither child alone reaches the clean world from w0, so "someone is
	// muddy" holds everywhere in the group closure.
	someMuddy := Or{Prop{"ma"}, Prop{"mb"}}
	if !mustEval(t, m, 0, Common{group, someMuddy}) {
		t.Error("Expected common knowledge that someone is muddy")
	}

	// But a's own muddiness is not common: a reaches the world where only
	// b is muddy.
	if mustEval(t, m, 0, Common{group, Prop{"ma"}}) {
		t.Error("Expected no common knowledge of a's muddiness")
	}
}

func TestCardDeal(t *testing.T) {
	m := CardDealExample()

	// World 0 deals red to a, white to b, blue to c.
	if !mustEval(t, m, 0, Knows{Prop{"a"}, Prop{"ar"}}) {
		t.Error("Expected a to know its own card")
	}
	if mustEval(t, m, 0, Knows{Prop{"a"}, Prop{"bw"}}) {
		t.Error("Expected a not to know b's card")
	}

	// a and b can pool their hands to locate c's card.
	group := Group{Prop{"a"}, Prop{"b"}}
	if !mustEval(t, m, 0, Distributed{group, Prop{"cb"}}) {
		t.Error("Expected a and b to distribute knowledge of c's card")
	}
	if mustEval(t, m, 0, Common{group, Prop{"cb"}}) {
		t.Error("Expected no common knowledge of c's card")
	}

	// Someone holds red in every deal, and that is common knowledge.
	someoneRed := Or{Prop{"ar"}, Or{Prop{"br"}, Prop{"cr"}}}
	all := Group{Prop{"a"}, Group{Prop{"b"}, Prop{"c"}}}
	if !mustEval(t, m, 0, Common{all, someoneRed}) {
		t.Error("Expected common knowledge that someone holds red")
	}
}
