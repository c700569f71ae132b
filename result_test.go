package hxrating

import (
	"errors"
	"testing"
)

func TestResultOK(t *testing.T) {
	props := Props{Rating: RatingOf(3)}
	r := OK(props)

	if r.Props() != props {
		t.Errorf("Props() = %+v, want %+v", r.Props(), props)
	}
	if r.Error() != nil {
		t.Errorf("Error() = %v, want nil", r.Error())
	}
}

func TestResultErr(t *testing.T) {
	testErr := errors.New("test error")
	r := Err(Props{}, testErr)

	if !errors.Is(r.Error(), testErr) {
		t.Errorf("Error() = %v, want %v", r.Error(), testErr)
	}
}

func TestResultFluentBuilders(t *testing.T) {
	r := OK(Props{}).
		Flash(FlashSuccess, "saved").
		Flash(FlashInfo, "fyi").
		Trigger("rating:selected", map[string]any{"stars": 5}).
		Header("Cache-Control", "no-store").
		Status(201)

	if len(r.flashes) != 2 {
		t.Errorf("flashes = %d, want 2", len(r.flashes))
	}
	if r.trigger != "rating:selected" {
		t.Errorf("trigger = %q, want rating:selected", r.trigger)
	}
	if r.triggerData["stars"] != 5 {
		t.Errorf("trigger data = %v, want stars 5", r.triggerData)
	}
	if r.headers["Cache-Control"] != "no-store" {
		t.Errorf("headers = %v", r.headers)
	}
	if r.status != 201 {
		t.Errorf("status = %d, want 201", r.status)
	}
}

func TestResultTriggerWithoutData(t *testing.T) {
	r := OK(Props{}).Trigger("plain-event")
	if r.trigger != "plain-event" || r.triggerData != nil {
		t.Errorf("Trigger() = (%q, %v), want bare event", r.trigger, r.triggerData)
	}
}
