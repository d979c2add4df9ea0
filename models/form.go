package models

import "time"

type FormKind string

const (
	FormKindMain FormKind = "mainform"
	FormKindSub  FormKind = "subform"
)

type FormStatus string

const (
	FormStatusPreview    FormStatus = "preview"
	FormStatusAvailable  FormStatus = "available"
	FormStatusProcessing FormStatus = "processing"
	FormStatusRewrite    FormStatus = "rewrite"
	FormStatusEnd        FormStatus = "end"
	FormStatusError      FormStatus = "error"
)

// Terminal reports whether no further transitions are allowed.
func (s FormStatus) Terminal() bool {
	return s == FormStatusEnd || s == FormStatusError
}

// Form is the negotiable work order. A mainform is created by a client
// in preview; a subform is spawned from a mainform during negotiation
// and lives in rewrite until merged or discarded.
//
// ClientApproved/DeveloperApproved are the two vote bits of a pending
// bilateral transition; ApprovalTarget records which status the votes
// are aimed at. All three are zeroed whenever the form is not
// mid-vote.
type Form struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Kind        FormKind `gorm:"type:varchar(16);not null" json:"type"`
	UserID      uint     `gorm:"not null" json:"user_id"`
	DeveloperID *uint    `json:"developer_id"`
	CreatedBy   uint     `gorm:"not null" json:"created_by"`

	Title        string `gorm:"size:128;not null" json:"title"`
	Message      string `gorm:"type:text;not null" json:"message"`
	Budget       string `gorm:"size:64;not null" json:"budget"`
	ExpectedTime string `gorm:"size:64;not null" json:"expected_time"`

	Status FormStatus `gorm:"type:varchar(16);not null;default:'preview'" json:"status"`

	ClientApproved    bool        `gorm:"not null;default:false" json:"-"`
	DeveloperApproved bool        `gorm:"not null;default:false" json:"-"`
	ApprovalTarget    *FormStatus `gorm:"type:varchar(16)" json:"-"`

	SubformID *uint `json:"subform_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Client    User  `gorm:"foreignKey:UserID" json:"-"`
	Developer *User `gorm:"foreignKey:DeveloperID" json:"-"`

	Functions    []Function    `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE" json:"-"`
	NonFunctions []NonFunction `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE" json:"-"`
	Blocks       []Block       `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE" json:"-"`
}

// ApprovalFlags reports the vote state in the legacy bit encoding
// (developer = 1, client = 2) used by API clients.
func (f *Form) ApprovalFlags() int {
	flags := 0
	if f.DeveloperApproved {
		flags |= 1
	}
	if f.ClientApproved {
		flags |= 2
	}
	return flags
}

// IsOwner reports whether the user is the owning client.
func (f *Form) IsOwner(u *User) bool {
	return u.HasRole(UserRoleClient) && f.UserID == u.ID
}

// IsBoundDeveloper reports whether the user is the developer bound to
// this form.
func (f *Form) IsBoundDeveloper(u *User) bool {
	return u.HasRole(UserRoleDeveloper) && f.DeveloperID != nil && *f.DeveloperID == u.ID
}
