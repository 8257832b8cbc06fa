// Package club holds the demo's domain model and its read-only fixtures.
// The fixtures are presentation inputs, not a data model: views filter them
// by role and simple date/status predicates and never mutate them.
package club

import (
	"time"

	"github.com/metaclub/clubos-pitch/engine/rbac"
)

// OnlineStatus of a staff member on the dashboard/Discord.
type OnlineStatus string

const (
	StatusOnline  OnlineStatus = "online"
	StatusAway    OnlineStatus = "away"
	StatusOffline OnlineStatus = "offline"
)

// ShiftStatus is the lifecycle of a scheduled shift.
type ShiftStatus string

const (
	ShiftScheduled ShiftStatus = "scheduled"
	ShiftActive    ShiftStatus = "active"
	ShiftCompleted ShiftStatus = "completed"
	ShiftCancelled ShiftStatus = "cancelled"
)

// ShiftResponse is the staff member's reply to an assignment.
type ShiftResponse string

const (
	ResponsePending             ShiftResponse = "pending"
	ResponseAccepted            ShiftResponse = "accepted"
	ResponseDeclined            ShiftResponse = "declined"
	ResponseRescheduleRequested ShiftResponse = "reschedule_requested"
)

// EventStatus is the lifecycle of a club event.
type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventScheduled EventStatus = "scheduled"
	EventConfirmed EventStatus = "confirmed"
	EventLive      EventStatus = "live"
	EventCompleted EventStatus = "completed"
)

// StaffMember is one roster entry.
type StaffMember struct {
	ID            string
	DisplayName   string
	SLName        string
	Role          rbac.Role
	Specialties   []string
	OnlineStatus  OnlineStatus
	JoinedDate    string
	LastSeen      time.Time
	HoursThisWeek int
	TipsThisWeek  int
	Rating        float64
	Bio           string
}

// Shift is one schedule entry for the week grid.
type Shift struct {
	ID        string
	StaffID   string
	StaffName string
	Role      rbac.Role
	DayOffset int // days from "today"; fixtures are relative so the demo always looks current
	StartTime string
	EndTime   string
	Status    ShiftStatus
	Response  ShiftResponse
	Notes     string
}

// Event is one upcoming club event.
type Event struct {
	ID          string
	Name        string
	Description string
	Genre       string
	DayOffset   int
	StartTime   string
	EndTime     string
	DJID        string
	HostID      string
	IsRecurring bool
	Status      EventStatus
}

// TipCategory routes a tip to a jar.
type TipCategory string

const (
	TipClub TipCategory = "club"
	TipHost TipCategory = "host"
	TipDJ   TipCategory = "dj"
)

// Tip is one tip transaction, amounts in L$.
type Tip struct {
	ID            string
	Timestamp     time.Time
	Amount        int
	TipperName    string
	RecipientID   string
	RecipientName string
	Category      TipCategory
	Source        string
}

// Stats are the overview quick stats.
type Stats struct {
	StaffOnline          int
	TotalStaff           int
	TonightRevenue       int
	WeeklyRevenue        int
	UpcomingEvents       int
	PeakGuests           int
	AverageVibe          float64
	CurrentGuests        int
	MaxCapacity          int
	AvgSpendPerGuest     int
	TipsClub             int
	TipsHost             int
	TipsDJ               int
	GroupMembersJoined   int
	GroupMembersOnline   int
	NewMembersThisEvent  int
}

// TipSample is one point of the overview tip graph.
type TipSample struct {
	Time string
	Club int
	DJ   int
	Host int
}

// FeedKind classifies a staff feed message.
type FeedKind string

const (
	FeedAlert   FeedKind = "alert"
	FeedMessage FeedKind = "message"
	FeedSystem  FeedKind = "system"
)

// FeedEntry is one staff feed message.
type FeedEntry struct {
	ID        string
	Kind      FeedKind
	Message   string
	Timestamp time.Time
}

// GuestVisit is one row of the new-guests panel.
type GuestVisit struct {
	ID          string
	Name        string
	JoinedAt    time.Time
	Duration    time.Duration
	IsNewMember bool
}

// DJBooth is the live booth snapshot.
type DJBooth struct {
	DJName          string
	SLUsername      string
	Genre           string
	CurrentTrack    string
	TipsThisSession int
	IsLive          bool
}

// HostStation is the live host snapshot.
type HostStation struct {
	HostName      string
	OnBreak       bool
	GuestsGreeted int
}

// Availability is a window a staff member offered for scheduling.
type Availability struct {
	ID        string
	StaffID   string
	StaffName string
	Role      rbac.Role
	DayOffset int
	StartTime string
	EndTime   string
}

// Pairing is a proposed DJ/host match for an upcoming event.
type Pairing struct {
	ID        string
	EventName string
	DayOffset int
	DJName    string
	HostName  string
}

// WeekRevenue is one bar of the analytics revenue trend.
type WeekRevenue struct {
	Week     string
	Revenue  int
	Expenses int
	TipsClub int
	TipsDJ   int
	TipsHost int
}

// WeekExpenses is one bar of the analytics expense trend.
type WeekExpenses struct {
	Week     string
	Sploder  int
	Fishbowl int
	Assets   int
	Custom   int
}

// PeakHour is one row of the peak-hours analysis.
type PeakHour struct {
	Hour   string
	Guests int
	Tips   int
}

// EventROI is one row of the event ROI table.
type EventROI struct {
	Event     string
	Revenue   int
	Cost      int
	Attendees int
	ROI       float64
}

// Expense is one expense record, amounts in L$.
type Expense struct {
	ID       string
	Name     string
	Amount   int
	Category string
	Date     string
	Notes    string
}

// LogEntry is one simulated audit log line.
type LogEntry struct {
	Timestamp time.Time
	Level     string
	Actor     string
	Message   string
}
