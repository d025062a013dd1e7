package domain

import (
	"encoding/json"
	"testing"
)

func TestArtist(t *testing.T) {
	t.Run("decodes upstream payload", func(t *testing.T) {
		payload := `{
			"id": 1,
			"image": "https://groupietrackers.herokuapp.com/api/images/queen.jpeg",
			"name": "Queen",
			"members": ["Freddie Mercury", "Brian May", "John Daecon", "Roger Meddows-Taylor"],
			"creationDate": 1970,
			"firstAlbum": "14-12-1973",
			"locations": "https://groupietrackers.herokuapp.com/api/locations/1"
		}`

		var artist Artist
		if err := json.Unmarshal([]byte(payload), &artist); err != nil {
			t.Fatalf("could not unmarshal artist: %v", err)
		}

		if artist.ID != 1 {
			t.Errorf("expected ID to be 1, got %d", artist.ID)
		}
		if artist.Name != "Queen" {
			t.Errorf("expected Name to be Queen, got %s", artist.Name)
		}
		if artist.CreationDate != "1970" {
			t.Errorf("expected CreationDate to be 1970, got %s", artist.CreationDate)
		}
		if len(artist.Members) != 4 {
			t.Errorf("expected 4 members, got %d", len(artist.Members))
		}
		if artist.FirstAlbum != "14-12-1973" {
			t.Errorf("expected FirstAlbum to be 14-12-1973, got %s", artist.FirstAlbum)
		}
	})

	t.Run("creation date as string", func(t *testing.T) {
		var artist Artist
		if err := json.Unmarshal([]byte(`{"id":2,"creationDate":"1985"}`), &artist); err != nil {
			t.Fatalf("could not unmarshal artist: %v", err)
		}
		if artist.CreationDate.String() != "1985" {
			t.Errorf("expected CreationDate to be 1985, got %s", artist.CreationDate)
		}
	})

	t.Run("creation date rejects objects", func(t *testing.T) {
		var artist Artist
		if err := json.Unmarshal([]byte(`{"id":2,"creationDate":{"y":1}}`), &artist); err == nil {
			t.Error("expected error for object creationDate")
		}
	})

	t.Run("numeric year marshals as number", func(t *testing.T) {
		data, err := json.Marshal(Artist{ID: 3, CreationDate: "1999"})
		if err != nil {
			t.Fatalf("could not marshal artist: %v", err)
		}
		var raw map[string]interface{}
		if err := json.Unmarshal(data, &raw); err != nil {
			t.Fatalf("could not unmarshal raw artist: %v", err)
		}
		if raw["creationDate"] != float64(1999) {
			t.Errorf("expected creationDate to be 1999, got %v", raw["creationDate"])
		}
	})
}

func TestMemberRange(t *testing.T) {
	max := 4
	tests := []struct {
		name  string
		r     MemberRange
		count int
		want  bool
	}{
		{"at min", MemberRange{Min: 2, Max: &max}, 2, true},
		{"at max", MemberRange{Min: 2, Max: &max}, 4, true},
		{"below min", MemberRange{Min: 2, Max: &max}, 1, false},
		{"above max", MemberRange{Min: 2, Max: &max}, 5, false},
		{"no upper bound", MemberRange{Min: 0}, 100, true},
		{"zero members", MemberRange{}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.count); got != tt.want {
				t.Errorf("Contains(%d) = %v, want %v", tt.count, got, tt.want)
			}
		})
	}
}
