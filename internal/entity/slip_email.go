package entity

// SlipEmail is one slip addressed to one employee.
type SlipEmail struct {
	To         string
	Name       string
	Period     Period
	Attachment Document
}
