package domain

type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "available"
	RoomStatusOccupied  RoomStatus = "occupied"
)

type Room struct {
	ID                   int               `json:"id"`
	Name                 string            `json:"name"`
	Location             string            `json:"location,omitempty"`
	NameTranslations     map[string]string `json:"name_translations,omitempty"`
	LocationTranslations map[string]string `json:"location_translations,omitempty"`
}

// LocalizedName returns the room name for lang, falling back to the default.
func (r *Room) LocalizedName(lang string) string {
	if name, ok := r.NameTranslations[lang]; ok {
		return name
	}
	return r.Name
}

func (r *Room) LocalizedLocation(lang string) string {
	if loc, ok := r.LocationTranslations[lang]; ok {
		return loc
	}
	return r.Location
}

// RoomWithStatus pairs a room with its live occupancy.
type RoomWithStatus struct {
	Room
	CurrentStatus RoomStatus `json:"current_status"`
}
