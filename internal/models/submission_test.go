package models

import "testing"

func TestStatusValid(t *testing.T) {
	for _, s := range AllStatuses {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []Status{"", "archived", "NEW"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestFormTypeValid(t *testing.T) {
	if !FormTypeQuote.Valid() || !FormTypeContact.Valid() {
		t.Error("quote and contact are the two known form types")
	}
	if FormType("survey").Valid() || FormType("").Valid() {
		t.Error("unknown form types should be invalid")
	}
}

func TestNextStatusesProgression(t *testing.T) {
	cases := map[Status][]Status{
		StatusNew:       {StatusContacted, StatusQuoted, StatusConfirmed, StatusCancelled},
		StatusContacted: {StatusQuoted, StatusConfirmed, StatusCancelled},
		StatusQuoted:    {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusCompleted, StatusCancelled},
		StatusCompleted: nil,
		StatusCancelled: nil,
	}
	for from, want := range cases {
		got := NextStatuses(from)
		if len(got) != len(want) {
			t.Errorf("NextStatuses(%s): expected %v, got %v", from, want, got)
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("NextStatuses(%s)[%d]: expected %s, got %s", from, i, want[i], got[i])
			}
		}
	}
}
