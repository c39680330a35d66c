package events

import "testing"

func TestHubPublishOrderAndUnsubscribe(t *testing.T) {
	var h Hub[int]
	var got []string

	unsubA := h.Subscribe(func(v int) { got = append(got, "a") })
	h.Subscribe(func(v int) { got = append(got, "b") })

	h.Publish(1)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Publish() order = %v", got)
	}

	unsubA()
	unsubA() // second call is harmless
	got = nil
	h.Publish(2)
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("after unsubscribe got %v", got)
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

func TestHubListenerUnsubscribesDuringPublish(t *testing.T) {
	var h Hub[string]
	calls := 0
	var unsub func()
	unsub = h.Subscribe(func(string) {
		calls++
		unsub()
	})
	h.Subscribe(func(string) { calls++ })

	h.Publish("x")
	h.Publish("y")
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}
