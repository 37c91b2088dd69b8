package pricing

import (
	"fmt"
	"strings"

	"moving_pricing/internal/domain/entities"
)

// LocalDistanceLimit is the longest distance, in miles, accepted for a
// local move.
const LocalDistanceLimit = 50.0

// CrewBand is the smallest crew accepted for loads up to MaxWeight lbs.
// A zero MaxWeight marks the open-ended last band.
type CrewBand struct {
	MaxWeight float64
	MinCrew   int
}

// DefaultCrewBands is the minimum crew per weight band.
var DefaultCrewBands = []CrewBand{
	{MaxWeight: 2500, MinCrew: 1},
	{MaxWeight: 8000, MinCrew: 2},
	{MaxWeight: 15000, MinCrew: 3},
	{MaxWeight: 0, MinCrew: 4},
}

// InputLimits caps the magnitudes one move may declare. A zero field is
// not enforced.
type InputLimits struct {
	MaxWeight          float64 // lbs
	MaxVolume          float64 // cubic feet
	MaxDistance        float64 // miles
	MaxDuration        float64 // hours
	MaxCrewSize        int
	MaxParkingDistance float64 // feet
}

// DefaultInputLimits bounds a single residential or commercial move.
var DefaultInputLimits = InputLimits{
	MaxWeight:          100000,
	MaxVolume:          20000,
	MaxDistance:        10000,
	MaxDuration:        720,
	MaxCrewSize:        50,
	MaxParkingDistance: 10000,
}

// Validator checks estimate input. It is pure and safe for concurrent use.
type Validator struct {
	crewBands     []CrewBand
	localDistance float64
	limits        InputLimits
}

func NewValidator(bands []CrewBand) *Validator {
	if len(bands) == 0 {
		bands = DefaultCrewBands
	}
	return &Validator{crewBands: bands, localDistance: LocalDistanceLimit, limits: DefaultInputLimits}
}

// WithLimits returns a copy of v enforcing l instead of DefaultInputLimits.
func (v *Validator) WithLimits(l InputLimits) *Validator {
	c := *v
	c.limits = l
	return &c
}

// Normalize returns a copy of in with strings trimmed, enum tags lower-cased
// and empty access difficulty / seasonal period set to their defaults.
func Normalize(in entities.EstimateInput) entities.EstimateInput {
	out := in.Clone()
	out.CustomerID = strings.TrimSpace(out.CustomerID)
	out.Service = entities.ServiceType(strings.ToLower(strings.TrimSpace(string(out.Service))))
	out.SeasonalPeriod = entities.SeasonalPeriod(strings.ToLower(strings.TrimSpace(string(out.SeasonalPeriod))))
	if out.SeasonalPeriod == "" {
		out.SeasonalPeriod = entities.SeasonStandard
	}
	out.Pickup = normalizeLocation(out.Pickup)
	out.Delivery = normalizeLocation(out.Delivery)
	out.MoveDate = out.MoveDate.UTC()
	for i := range out.Rooms {
		out.Rooms[i].Room = strings.TrimSpace(out.Rooms[i].Room)
	}
	return out
}

func normalizeLocation(l entities.Location) entities.Location {
	l.Address = strings.TrimSpace(l.Address)
	l.AccessDifficulty = entities.AccessDifficulty(strings.ToLower(strings.TrimSpace(string(l.AccessDifficulty))))
	if l.AccessDifficulty == "" {
		l.AccessDifficulty = entities.AccessEasy
	}
	return l
}

// Validate normalizes in and runs every check, collecting all violations in
// a fixed order.
func (v *Validator) Validate(in entities.EstimateInput) entities.ValidationOutcome {
	n := Normalize(in)
	errs := make([]string, 0)
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	if n.CustomerID == "" {
		add("Customer ID is required")
	}
	if !n.Service.IsValid() {
		add("Service must be one of: local, long_distance, storage, packing_only")
	}
	if n.MoveDate.IsZero() {
		add("Move date is required")
	}
	if n.Service == entities.ServiceLocal && n.Distance > v.localDistance {
		add("Local moves must be %s miles or less", formatNumber(v.localDistance))
	}
	if n.TotalWeight <= 0 {
		add("Total weight must be greater than 0")
	}
	if n.TotalVolume <= 0 {
		add("Total volume must be greater than 0")
	}
	if n.EstimatedDuration <= 0 {
		add("Estimated duration must be greater than 0")
	}
	if n.CrewSize < 1 {
		add("Crew size must be at least 1")
	} else if need := v.minimumCrew(n.TotalWeight); n.CrewSize < need {
		add("Crew size of %d is too small for %s lbs; at least %d movers are required", n.CrewSize, formatNumber(n.TotalWeight), need)
	}
	if n.Distance < 0 {
		add("Distance cannot be negative")
	}
	if n.SpecialItems.FragileItems < 0 {
		add("Fragile item count cannot be negative")
	}
	if n.SpecialItems.ValuableItems < 0 {
		add("Valuable item count cannot be negative")
	}
	if !n.SeasonalPeriod.IsValid() {
		add("Seasonal period must be one of: peak, standard, off_peak")
	}
	v.checkLimits(n, add)

	validateLocation("Pickup", n.Pickup, add)
	validateLocation("Delivery", n.Delivery, add)

	for i, room := range n.Rooms {
		for j, item := range room.Items {
			if item.Quantity < 0 || item.Weight < 0 || item.Volume < 0 {
				add("Room %d item %d cannot have negative quantity, weight or volume", i+1, j+1)
			}
		}
	}

	return entities.ValidationOutcome{Valid: len(errs) == 0, Errors: errs}
}

func (v *Validator) checkLimits(n entities.EstimateInput, add func(string, ...any)) {
	l := v.limits
	if l.MaxWeight > 0 && n.TotalWeight > l.MaxWeight {
		add("Total weight cannot exceed %s lbs", formatNumber(l.MaxWeight))
	}
	if l.MaxVolume > 0 && n.TotalVolume > l.MaxVolume {
		add("Total volume cannot exceed %s cubic feet", formatNumber(l.MaxVolume))
	}
	if l.MaxDistance > 0 && n.Distance > l.MaxDistance {
		add("Distance cannot exceed %s miles", formatNumber(l.MaxDistance))
	}
	if l.MaxDuration > 0 && n.EstimatedDuration > l.MaxDuration {
		add("Estimated duration cannot exceed %s hours", formatNumber(l.MaxDuration))
	}
	if l.MaxCrewSize > 0 && n.CrewSize > l.MaxCrewSize {
		add("Crew size cannot exceed %d", l.MaxCrewSize)
	}
	if l.MaxParkingDistance > 0 {
		if n.Pickup.ParkingDistance > l.MaxParkingDistance {
			add("Pickup parking distance cannot exceed %s feet", formatNumber(l.MaxParkingDistance))
		}
		if n.Delivery.ParkingDistance > l.MaxParkingDistance {
			add("Delivery parking distance cannot exceed %s feet", formatNumber(l.MaxParkingDistance))
		}
	}
}

func validateLocation(label string, l entities.Location, add func(string, ...any)) {
	if l.Address == "" {
		add("%s address is required", label)
	}
	if l.FloorLevel < 0 {
		add("%s floor level cannot be negative", label)
	}
	if l.ParkingDistance < 0 {
		add("%s parking distance cannot be negative", label)
	}
	if l.StairsCount < 0 {
		add("%s stairs count cannot be negative", label)
	}
	if !l.AccessDifficulty.IsValid() {
		add("%s access difficulty must be one of: easy, moderate, difficult, extreme", label)
	}
}

func (v *Validator) minimumCrew(weight float64) int {
	for _, b := range v.crewBands {
		if b.MaxWeight == 0 || weight <= b.MaxWeight {
			return b.MinCrew
		}
	}
	return 1
}

func formatNumber(f float64) string {
	return fmt.Sprintf("%g", f)
}
