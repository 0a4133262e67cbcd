package customer

import "time"

// Customer carries contact details plus the body measurements a tailor
// records at fitting. All measurements are optional and in centimeters.
type Customer struct {
	ID          string
	WorkspaceID string
	Name        string
	Phone       string
	Email       *string
	Address     *string
	Notes       *string

	// Basic
	Height *float64
	Weight *float64

	// Upper body
	Chest        *float64
	Waist        *float64
	Hips         *float64
	Shoulder     *float64
	SleeveLength *float64
	Neck         *float64
	Armhole      *float64

	// Lower body
	Inseam *float64
	Thigh  *float64
	Knee   *float64
	Calf   *float64
	Ankle  *float64

	// Special
	BackLength *float64
	Crotch     *float64

	// Preferences
	PreferredFit      *string
	FabricPreferences *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
