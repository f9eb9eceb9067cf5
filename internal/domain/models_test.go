package domain

import (
	"encoding/json"
	"testing"
)

func TestImagesCover(t *testing.T) {
	if got := (Images{}).Cover(); got != "" {
		t.Fatalf("empty cover = %q, want empty", got)
	}
	if got := (Images{"a.jpg", "b.jpg"}).Cover(); got != "a.jpg" {
		t.Fatalf("cover = %q, want a.jpg", got)
	}
}

func TestVehicleJSONKeys(t *testing.T) {
	v := Vehicle{
		ID:       "v1",
		Name:     "Nissan Frontier Pro-4X",
		BodyType: "Pick-up",
		Images:   Images{"1.jpg"},
	}
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// The admin panel depends on these exact keys.
	for _, k := range []string{"id", "name", "bodyType", "description_es", "description_en", "images", "cover_image", "available"} {
		if _, ok := m[k]; !ok {
			t.Fatalf("missing json key %q in %s", k, b)
		}
	}
}

func TestTableNames(t *testing.T) {
	if Vehicle.TableName(Vehicle{}) != "vehicles" ||
		ContactMessage.TableName(ContactMessage{}) != "contact_messages" ||
		StatusCheck.TableName(StatusCheck{}) != "status_checks" {
		t.Fatalf("unexpected table names")
	}
}
