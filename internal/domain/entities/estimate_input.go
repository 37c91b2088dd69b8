package entities

import "time"

// ServiceType identifies the kind of move being priced.
type ServiceType string

const (
	ServiceLocal        ServiceType = "local"
	ServiceLongDistance ServiceType = "long_distance"
	ServiceStorage      ServiceType = "storage"
	ServicePackingOnly  ServiceType = "packing_only"
)

// ServiceTypes lists the recognized services in a fixed order.
var ServiceTypes = []ServiceType{ServiceLocal, ServiceLongDistance, ServiceStorage, ServicePackingOnly}

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceLocal, ServiceLongDistance, ServiceStorage, ServicePackingOnly:
		return true
	}
	return false
}

// AccessDifficulty is the physical access tier of a pickup or delivery location.
type AccessDifficulty string

const (
	AccessEasy      AccessDifficulty = "easy"
	AccessModerate  AccessDifficulty = "moderate"
	AccessDifficult AccessDifficulty = "difficult"
	AccessExtreme   AccessDifficulty = "extreme"
)

func (a AccessDifficulty) IsValid() bool {
	switch a {
	case AccessEasy, AccessModerate, AccessDifficult, AccessExtreme:
		return true
	}
	return false
}

// SeasonalPeriod tags the season the move falls into.
type SeasonalPeriod string

const (
	SeasonPeak     SeasonalPeriod = "peak"
	SeasonStandard SeasonalPeriod = "standard"
	SeasonOffPeak  SeasonalPeriod = "off_peak"
)

func (s SeasonalPeriod) IsValid() bool {
	switch s {
	case SeasonPeak, SeasonStandard, SeasonOffPeak:
		return true
	}
	return false
}

// Location describes one leg (pickup or delivery) of a move.
//
// Field names in the json tags are the paths used by location handicap
// rule conditions (e.g. "stairsCount", "hasElevator").
type Location struct {
	Address          string           `json:"address"`
	FloorLevel       int              `json:"floorLevel"`
	HasElevator      bool             `json:"hasElevator"`
	LongCarry        bool             `json:"longCarry"`
	ParkingDistance  float64          `json:"parkingDistance"`
	AccessDifficulty AccessDifficulty `json:"accessDifficulty"`
	StairsCount      int              `json:"stairsCount"`
	NarrowHallways   bool             `json:"narrowHallways"`
}

type SpecialItems struct {
	Piano         bool `json:"piano"`
	Antiques      bool `json:"antiques"`
	Artwork       bool `json:"artwork"`
	FragileItems  int  `json:"fragileItems"`
	ValuableItems int  `json:"valuableItems"`
}

type AdditionalServices struct {
	Packing   bool `json:"packing"`
	Unpacking bool `json:"unpacking"`
	Assembly  bool `json:"assembly"`
	Storage   bool `json:"storage"`
	Cleaning  bool `json:"cleaning"`
}

type InventoryItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Weight   float64 `json:"weight"`
	Volume   float64 `json:"volume"`
}

type RoomInventory struct {
	Room  string          `json:"room"`
	Items []InventoryItem `json:"items"`
}

// EstimateInput carries every move characteristic the pricing engine reads.
//
// Rule conditions address fields by their json names using dotted paths,
// e.g. "specialItems.piano" or "pickup.stairsCount".
type EstimateInput struct {
	CustomerID            string             `json:"customerId"`
	Service               ServiceType        `json:"service"`
	MoveDate              time.Time          `json:"moveDate"`
	Pickup                Location           `json:"pickup"`
	Delivery              Location           `json:"delivery"`
	TotalWeight           float64            `json:"totalWeight"`
	TotalVolume           float64            `json:"totalVolume"`
	Distance              float64            `json:"distance"`
	EstimatedDuration     float64            `json:"estimatedDuration"`
	CrewSize              int                `json:"crewSize"`
	IsWeekend             bool               `json:"isWeekend"`
	IsHoliday             bool               `json:"isHoliday"`
	SeasonalPeriod        SeasonalPeriod     `json:"seasonalPeriod"`
	RequiresSpecialtyCrew bool               `json:"requiresSpecialtyCrew"`
	SpecialItems          SpecialItems       `json:"specialItems"`
	AdditionalServices    AdditionalServices `json:"additionalServices"`
	Rooms                 []RoomInventory    `json:"rooms"`
}

// Clone returns a copy that shares no slices with the receiver.
func (in EstimateInput) Clone() EstimateInput {
	out := in
	if in.Rooms != nil {
		out.Rooms = make([]RoomInventory, len(in.Rooms))
		for i, r := range in.Rooms {
			out.Rooms[i] = RoomInventory{Room: r.Room}
			if r.Items != nil {
				out.Rooms[i].Items = append([]InventoryItem(nil), r.Items...)
			}
		}
	}
	return out
}
