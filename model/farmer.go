// file: model/farmer.go

package model

import "time"

// FarmerType is the closed set of farming categories a farmer can register under.
type FarmerType string

const (
	FarmerTypeMixed   FarmerType = "Mixed"
	FarmerTypeCrop    FarmerType = "Crop"
	FarmerTypeDairy   FarmerType = "Dairy"
	FarmerTypePoultry FarmerType = "Poultry"
)

// FarmerTypes lists every accepted FarmerType in display order.
var FarmerTypes = []FarmerType{FarmerTypeMixed, FarmerTypeCrop, FarmerTypeDairy, FarmerTypePoultry}

// IsValid reports whether t is one of the known farmer types.
func (t FarmerType) IsValid() bool {
	for _, known := range FarmerTypes {
		if t == known {
			return true
		}
	}
	return false
}

type Role string

const (
	RoleFarmer   Role = "farmer"
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Farmer is a registered account as stored in the database.
type Farmer struct {
	ID           int        `json:"id"`
	FullName     string     `json:"fullName"`
	FarmName     string     `json:"farmName"`
	Email        string     `json:"email"`
	Mobile       string     `json:"mobile"`
	PasswordHash string     `json:"-"`
	FarmLocation string     `json:"farmLocation"`
	FarmerType   FarmerType `json:"farmerType"`
	Role         Role       `json:"role"`
	ProfilePhoto string     `json:"profilePhoto,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}
