package model

import "time"

// InquiryStatus is the moderation state of an Inquiry.
type InquiryStatus string

const (
	InquiryUnread   InquiryStatus = "UNREAD"
	InquiryRead     InquiryStatus = "READ"
	InquiryResolved InquiryStatus = "RESOLVED"
	InquiryArchived InquiryStatus = "ARCHIVED"
)

// InquiryStatuses lists every accepted status in workflow order.
var InquiryStatuses = []InquiryStatus{InquiryUnread, InquiryRead, InquiryResolved, InquiryArchived}

// ParseInquiryStatus returns the status matching s exactly, or false.
func ParseInquiryStatus(s string) (InquiryStatus, bool) {
	for _, st := range InquiryStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Inquiry is a visitor-submitted contact request.
type Inquiry struct {
	ID        string        `json:"id"`
	Email     string        `json:"email"`
	Message   string        `json:"message"`
	Status    InquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// InquiryFilter narrows an inquiry listing. The zero value lists everything.
type InquiryFilter struct {
	Status InquiryStatus
}
