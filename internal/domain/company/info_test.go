package company

import "testing"

func TestDefault_Complete(t *testing.T) {
	if !Default().Complete() {
		t.Fatal("default info must populate every field")
	}
}

func TestComplete_MissingField(t *testing.T) {
	info := Default()
	info.Tips = ""
	if info.Complete() {
		t.Error("expected incomplete info when a field is empty")
	}
}
