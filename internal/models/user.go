package models

import "time"

// User is a registered farmer account. Email and phone are unique across all
// users; the password is stored only as a bcrypt hash and never serialized.
type User struct {
	ID           string     `json:"_id" db:"id"`
	FullName     string     `json:"fullName" db:"full_name"`
	PhoneNumber  string     `json:"phoneNumber" db:"phone_number"`
	EmailID      string     `json:"emailId" db:"email_id"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         string     `json:"role" db:"role"` // standard | admin
	State        string     `json:"state" db:"state"`
	District     string     `json:"district" db:"district"`
	Crops        []string   `json:"crops" db:"-"`
	Age          int        `json:"age" db:"age"`
	CropHistory  []string   `json:"cropHistory,omitempty" db:"-"`
	PhotoURL     string     `json:"photoUrl,omitempty" db:"photo_url"`
	Biometric    *Biometric `json:"biometric,omitempty" db:"-"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

// Biometric is fingerprint-sensor enrollment metadata. Only the sensor's
// template id is kept; the template itself never leaves the device.
type Biometric struct {
	Used             bool       `json:"used"`
	SensorModel      string     `json:"sensorModel,omitempty"`
	SensorTemplateID string     `json:"sensorTemplateId,omitempty"`
	EnrolledAt       *time.Time `json:"enrolledAt,omitempty"`
}

// Projection is the non-secret view of a user returned by signup, login and
// profile endpoints. The password hash has no field here at all.
type Projection struct {
	ID          string   `json:"_id"`
	FullName    string   `json:"fullName"`
	PhoneNumber string   `json:"phoneNumber"`
	EmailID     string   `json:"emailId"`
	Role        string   `json:"role"`
	State       string   `json:"state"`
	District    string   `json:"district"`
	Crops       []string `json:"crops"`
	Age         int      `json:"age"`
	CropHistory []string `json:"cropHistory,omitempty"`
	PhotoURL    string   `json:"photoUrl,omitempty"`
}

// Project returns the non-secret projection of the user.
func (u *User) Project() Projection {
	return Projection{
		ID:          u.ID,
		FullName:    u.FullName,
		PhoneNumber: u.PhoneNumber,
		EmailID:     u.EmailID,
		Role:        u.Role,
		State:       u.State,
		District:    u.District,
		Crops:       u.Crops,
		Age:         u.Age,
		CropHistory: u.CropHistory,
		PhotoURL:    u.PhotoURL,
	}
}
