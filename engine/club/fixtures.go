package club

import (
	"time"

	"github.com/metaclub/clubos-pitch/engine/rbac"
)

// Staff returns the demo roster.
func Staff() []StaffMember {
	seen := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	return []StaffMember{
		{
			ID: "staff-001", DisplayName: "Nova", SLName: "NovaStar Resident",
			Role: rbac.RoleOwner, OnlineStatus: StatusOnline, JoinedDate: "2023-01-15",
			LastSeen: seen, HoursThisWeek: 28,
			Bio: "Owner & Founder — built this place from scratch",
		},
		{
			ID: "staff-002", DisplayName: "Zane", SLName: "Zaneth Resident",
			Role: rbac.RoleGeneralManager, OnlineStatus: StatusOnline, JoinedDate: "2023-03-10",
			LastSeen: seen, HoursThisWeek: 32,
			Bio: "General Manager & Systems Architect",
		},
		{
			ID: "staff-003", DisplayName: "DJ Apex", SLName: "Apex Resident",
			Role: rbac.RoleDJ, Specialties: []string{"Techno", "House", "Synthwave"},
			OnlineStatus: StatusOnline, JoinedDate: "2023-06-20", LastSeen: seen,
			HoursThisWeek: 12, TipsThisWeek: 4200, Rating: 4.8,
			Bio: "Resident DJ — spinning since 2019",
		},
		{
			ID: "staff-004", DisplayName: "DJ Caspian", SLName: "Caspian Resident",
			Role: rbac.RoleDJ, Specialties: []string{"Deep House", "Chill", "Lo-Fi"},
			OnlineStatus: StatusOffline, JoinedDate: "2024-01-10",
			LastSeen: seen.Add(-17*time.Hour - 30*time.Minute),
			HoursThisWeek: 8, TipsThisWeek: 2800, Rating: 4.5,
			Bio: "Night shift vibes specialist",
		},
		{
			ID: "staff-005", DisplayName: "Remi", SLName: "Remi Resident",
			Role: rbac.RoleHost, OnlineStatus: StatusOnline, JoinedDate: "2023-09-12",
			LastSeen: seen, HoursThisWeek: 18, TipsThisWeek: 3100, Rating: 4.9,
			Bio: "Head Host — the life of the party",
		},
		{
			ID: "staff-006", DisplayName: "Ivy", SLName: "Ivy Lace",
			Role: rbac.RoleHost, OnlineStatus: StatusAway, JoinedDate: "2024-03-05",
			LastSeen: seen.Add(-11*time.Hour - 45*time.Minute),
			HoursThisWeek: 10, TipsThisWeek: 1500, Rating: 4.3,
			Bio: "Guest greeter & VIP concierge",
		},
		{
			ID: "staff-007", DisplayName: "Lyra", SLName: "Lyra Noir",
			Role: rbac.RoleManager, OnlineStatus: StatusOnline, JoinedDate: "2023-11-01",
			LastSeen: seen, HoursThisWeek: 22,
			Bio: "Floor manager & schedule coordinator",
		},
		{
			ID: "staff-008", DisplayName: "Orion", SLName: "Orion Vantara",
			Role: rbac.RoleOwner, OnlineStatus: StatusOffline, JoinedDate: "2022-05-10",
			LastSeen: seen.Add(-21 * time.Hour), HoursThisWeek: 14,
			Bio: "Co-Owner",
		},
		{
			ID: "staff-009", DisplayName: "Vera", SLName: "Vera Billig",
			Role: rbac.RoleOwner, OnlineStatus: StatusOnline, JoinedDate: "2022-08-22",
			LastSeen: seen, HoursThisWeek: 20,
			Bio: "Co-Owner",
		},
		{
			ID: "staff-010", DisplayName: "Echo", SLName: "Echo Veil",
			Role: rbac.RoleManager, OnlineStatus: StatusOnline, JoinedDate: "2024-01-05",
			LastSeen: seen.Add(-90 * time.Minute), HoursThisWeek: 24,
			Bio: "Events manager",
		},
		{
			ID: "staff-011", DisplayName: "Mira", SLName: "Mira Spire",
			Role: rbac.RoleHost, OnlineStatus: StatusOffline, JoinedDate: "2023-11-15",
			LastSeen: seen.Add(-14 * time.Hour), HoursThisWeek: 16,
			TipsThisWeek: 1200, Rating: 4.6,
			Bio: "Fashion consultant & Host",
		},
		{
			ID: "staff-012", DisplayName: "DJ Sable", SLName: "Sable Resident",
			Role: rbac.RoleDJ, Specialties: []string{"EDM", "Dubstep"},
			OnlineStatus: StatusOffline, JoinedDate: "2024-02-01",
			LastSeen: seen.Add(-6 * 24 * time.Hour), HoursThisWeek: 6,
			TipsThisWeek: 1500, Rating: 4.8,
			Bio: "Weekend heavy bass",
		},
		{
			ID: "staff-013", DisplayName: "Soleil", SLName: "Soleil Resident",
			Role: rbac.RoleHost, OnlineStatus: StatusOnline, JoinedDate: "2023-12-10",
			LastSeen: seen, HoursThisWeek: 12, TipsThisWeek: 2100, Rating: 4.9,
			Bio: "VIP Host",
		},
	}
}

// Shifts returns this week's schedule, with days relative to today.
func Shifts() []Shift {
	return []Shift{
		{ID: "shift-001", StaffID: "staff-003", StaffName: "DJ Apex", Role: rbac.RoleDJ, DayOffset: 0, StartTime: "20:00", EndTime: "00:00", Status: ShiftActive, Response: ResponseAccepted, Notes: "Neon Nights theme"},
		{ID: "shift-002", StaffID: "staff-005", StaffName: "Remi", Role: rbac.RoleHost, DayOffset: 0, StartTime: "19:00", EndTime: "01:00", Status: ShiftActive, Response: ResponseAccepted},
		{ID: "shift-003", StaffID: "staff-007", StaffName: "Lyra", Role: rbac.RoleManager, DayOffset: 0, StartTime: "18:00", EndTime: "02:00", Status: ShiftActive, Response: ResponseAccepted},
		{ID: "shift-004", StaffID: "staff-004", StaffName: "DJ Caspian", Role: rbac.RoleDJ, DayOffset: 1, StartTime: "22:00", EndTime: "04:00", Status: ShiftScheduled, Response: ResponsePending},
		{ID: "shift-005", StaffID: "staff-006", StaffName: "Ivy", Role: rbac.RoleHost, DayOffset: 1, StartTime: "20:00", EndTime: "02:00", Status: ShiftScheduled, Response: ResponseAccepted},
		{ID: "shift-006", StaffID: "staff-007", StaffName: "Lyra", Role: rbac.RoleManager, DayOffset: 1, StartTime: "19:00", EndTime: "03:00", Status: ShiftScheduled, Response: ResponseAccepted},
		{ID: "shift-007", StaffID: "staff-003", StaffName: "DJ Apex", Role: rbac.RoleDJ, DayOffset: 2, StartTime: "21:00", EndTime: "01:00", Status: ShiftScheduled, Response: ResponseAccepted, Notes: "Ladies Night"},
		{ID: "shift-008", StaffID: "staff-005", StaffName: "Remi", Role: rbac.RoleHost, DayOffset: 2, StartTime: "20:00", EndTime: "02:00", Status: ShiftScheduled, Response: ResponseRescheduleRequested},
		{ID: "shift-009", StaffID: "staff-004", StaffName: "DJ Caspian", Role: rbac.RoleDJ, DayOffset: 3, StartTime: "22:00", EndTime: "04:00", Status: ShiftScheduled, Response: ResponsePending},
		{ID: "shift-010", StaffID: "staff-006", StaffName: "Ivy", Role: rbac.RoleHost, DayOffset: 3, StartTime: "21:00", EndTime: "03:00", Status: ShiftScheduled, Response: ResponseDeclined},
	}
}

// Events returns the upcoming event lineup.
func Events() []Event {
	return []Event{
		{
			ID: "event-001", Name: "Neon Nights", Genre: "Synthwave / Techno",
			Description: "The ultimate synthwave experience. Glow sticks, laser shows, and non-stop beats.",
			DayOffset:   0, StartTime: "20:00", EndTime: "02:00",
			DJID: "staff-003", HostID: "staff-005", IsRecurring: true, Status: EventConfirmed,
		},
		{
			ID: "event-002", Name: "Ladies Night", Genre: "House / Deep House",
			Description: "Free drinks for the first hour. VIP access included.",
			DayOffset:   2, StartTime: "21:00", EndTime: "03:00",
			DJID: "staff-003", HostID: "staff-005", IsRecurring: true, Status: EventScheduled,
		},
		{
			ID: "event-003", Name: "Lo-Fi Lounge", Genre: "Lo-Fi / Chill",
			Description: "Chill beats, ambience, and smooth conversations.",
			DayOffset:   3, StartTime: "22:00", EndTime: "04:00",
			DJID: "staff-004", HostID: "staff-006", IsRecurring: false, Status: EventDraft,
		},
	}
}

// RecentTips returns tonight's latest tip transactions, timestamped
// relative to now so the feed always reads as live.
func RecentTips(now time.Time) []Tip {
	return []Tip{
		{ID: "tip-001", Timestamp: now.Add(-5 * time.Minute), Amount: 500, TipperName: "CoolCat42", RecipientID: "staff-003", RecipientName: "DJ Apex", Category: TipDJ, Source: "DG-T 100s DJ Jar"},
		{ID: "tip-002", Timestamp: now.Add(-10 * time.Minute), Amount: 200, TipperName: "NightOwl88", RecipientID: "staff-005", RecipientName: "Remi", Category: TipHost, Source: "DG-T 100s Host Jar"},
		{ID: "tip-003", Timestamp: now.Add(-15 * time.Minute), Amount: 1000, TipperName: "VIPKing", RecipientID: "staff-001", RecipientName: "Club", Category: TipClub, Source: "DG-T 200 Club Jar"},
		{ID: "tip-004", Timestamp: now.Add(-20 * time.Minute), Amount: 300, TipperName: "DancerFan", RecipientID: "staff-003", RecipientName: "DJ Apex", Category: TipDJ, Source: "DG-T 100s DJ Jar"},
		{ID: "tip-005", Timestamp: now.Add(-30 * time.Minute), Amount: 150, TipperName: "WanderlustSL", RecipientID: "staff-005", RecipientName: "Remi", Category: TipHost, Source: "DG-T 100s Host Jar"},
		{ID: "tip-006", Timestamp: now.Add(-40 * time.Minute), Amount: 750, TipperName: "HighRoller99", RecipientID: "staff-001", RecipientName: "Club", Category: TipClub, Source: "DG-T 200 Club Jar"},
	}
}

// LiveStats returns the overview quick stats.
func LiveStats() Stats {
	return Stats{
		StaffOnline:         4,
		TotalStaff:          7,
		TonightRevenue:      12500,
		WeeklyRevenue:       48200,
		UpcomingEvents:      3,
		PeakGuests:          34,
		AverageVibe:         8.4,
		CurrentGuests:       34,
		MaxCapacity:         60,
		AvgSpendPerGuest:    85,
		TipsClub:            4800,
		TipsHost:            3450,
		TipsDJ:              4250,
		GroupMembersJoined:  22,
		GroupMembersOnline:  8,
		NewMembersThisEvent: 5,
	}
}

// TipHistory returns the half-hourly tip accumulation behind the vibe graph.
func TipHistory() []TipSample {
	return []TipSample{
		{Time: "20:00", Club: 200, DJ: 100, Host: 50},
		{Time: "20:30", Club: 350, DJ: 200, Host: 100},
		{Time: "21:00", Club: 800, DJ: 450, Host: 200},
		{Time: "21:30", Club: 1200, DJ: 750, Host: 350},
		{Time: "22:00", Club: 2200, DJ: 1200, Host: 500},
		{Time: "22:30", Club: 3100, DJ: 1800, Host: 800},
		{Time: "23:00", Club: 4500, DJ: 2500, Host: 1100},
		{Time: "23:30", Club: 5200, DJ: 3100, Host: 1400},
		{Time: "00:00", Club: 5800, DJ: 3600, Host: 1700},
		{Time: "00:30", Club: 6100, DJ: 3800, Host: 1900},
		{Time: "01:00", Club: 6300, DJ: 3900, Host: 2000},
	}
}

// Booth returns the live DJ booth snapshot.
func Booth() DJBooth {
	return DJBooth{
		DJName:          "DJ Apex",
		SLUsername:      "Apex Resident",
		Genre:           "Techno / House",
		CurrentTrack:    `"Neon Drift" – Synthwave`,
		TipsThisSession: 4200,
		IsLive:          true,
	}
}

// Station returns the live host station snapshot.
func Station() HostStation {
	return HostStation{HostName: "Remi", GuestsGreeted: 27}
}

// StaffFeed returns the recent staff feed, timestamped relative to now.
func StaffFeed(now time.Time) []FeedEntry {
	return []FeedEntry{
		{ID: "feed-001", Kind: FeedAlert, Message: "Club at 57% capacity", Timestamp: now.Add(-10 * time.Minute)},
		{ID: "feed-002", Kind: FeedMessage, Message: "DJ Apex: switching to Synthwave set next", Timestamp: now.Add(-12 * time.Minute)},
		{ID: "feed-003", Kind: FeedSystem, Message: "5 new group members joined this event", Timestamp: now.Add(-15 * time.Minute)},
		{ID: "feed-004", Kind: FeedAlert, Message: "Tip jar total passed L$10,000 tonight", Timestamp: now.Add(-20 * time.Minute)},
		{ID: "feed-005", Kind: FeedMessage, Message: "Remi: new guest needs orientation", Timestamp: now.Add(-22 * time.Minute)},
		{ID: "feed-006", Kind: FeedSystem, Message: "Sploder payout: L$500 distributed", Timestamp: now.Add(-25 * time.Minute)},
	}
}

// GuestVisits returns tonight's guest arrivals, newest last.
func GuestVisits(now time.Time) []GuestVisit {
	return []GuestVisit{
		{ID: "guest-001", Name: "NightOwl88", JoinedAt: now.Add(-50 * time.Minute), Duration: 45 * time.Minute},
		{ID: "guest-002", Name: "CyberPunk42", JoinedAt: now.Add(-45 * time.Minute), Duration: 38 * time.Minute, IsNewMember: true},
		{ID: "guest-003", Name: "VIPKing", JoinedAt: now.Add(-70 * time.Minute), Duration: 65 * time.Minute},
		{ID: "guest-004", Name: "GlowStickGirl", JoinedAt: now.Add(-35 * time.Minute), Duration: 22 * time.Minute, IsNewMember: true},
		{ID: "guest-005", Name: "BassDropper", JoinedAt: now.Add(-30 * time.Minute), Duration: 18 * time.Minute, IsNewMember: true},
		{ID: "guest-006", Name: "WanderlustSL", JoinedAt: now.Add(-90 * time.Minute), Duration: 80 * time.Minute},
		{ID: "guest-007", Name: "DancerFan", JoinedAt: now.Add(-60 * time.Minute), Duration: 55 * time.Minute},
		{ID: "guest-008", Name: "NeonRider", JoinedAt: now.Add(-20 * time.Minute), Duration: 12 * time.Minute, IsNewMember: true},
		{ID: "guest-009", Name: "HighRoller99", JoinedAt: now.Add(-75 * time.Minute), Duration: 70 * time.Minute},
		{ID: "guest-010", Name: "StarDust77", JoinedAt: now.Add(-25 * time.Minute), Duration: 15 * time.Minute, IsNewMember: true},
	}
}

// Expenses returns this month's expense records.
func Expenses() []Expense {
	return []Expense{
		{ID: "exp-001", Name: "Sploder Payout — Neon Nights", Amount: 500, Category: "sploder", Date: "2026-02-11", Notes: "Weekly event sploder"},
		{ID: "exp-002", Name: "Sploder Payout — Lo-Fi Lounge", Amount: 300, Category: "sploder", Date: "2026-02-08"},
		{ID: "exp-003", Name: "Fishbowl Raffle — Ladies Night", Amount: 200, Category: "fishbowl", Date: "2026-02-09", Notes: "Random winner draws"},
		{ID: "exp-004", Name: "New Dance Floor Particles", Amount: 800, Category: "asset_purchase", Date: "2026-02-07", Notes: "Marketplace purchase — animated particle system"},
		{ID: "exp-005", Name: "DJ Booth Redesign Props", Amount: 1200, Category: "asset_purchase", Date: "2026-02-05", Notes: "Custom built props for booth upgrade"},
		{ID: "exp-006", Name: "Fishbowl Raffle — Weekend Special", Amount: 350, Category: "fishbowl", Date: "2026-02-04"},
	}
}

// Availabilities returns the windows staff offered for smart scheduling.
func Availabilities() []Availability {
	return []Availability{
		{ID: "avail-001", StaffID: "staff-003", StaffName: "DJ Apex", Role: rbac.RoleDJ, DayOffset: 4, StartTime: "19:00", EndTime: "01:00"},
		{ID: "avail-002", StaffID: "staff-003", StaffName: "DJ Apex", Role: rbac.RoleDJ, DayOffset: 5, StartTime: "20:00", EndTime: "02:00"},
		{ID: "avail-003", StaffID: "staff-004", StaffName: "DJ Caspian", Role: rbac.RoleDJ, DayOffset: 4, StartTime: "21:00", EndTime: "03:00"},
		{ID: "avail-004", StaffID: "staff-004", StaffName: "DJ Caspian", Role: rbac.RoleDJ, DayOffset: 6, StartTime: "22:00", EndTime: "04:00"},
		{ID: "avail-005", StaffID: "staff-005", StaffName: "Remi", Role: rbac.RoleHost, DayOffset: 4, StartTime: "18:00", EndTime: "00:00"},
		{ID: "avail-006", StaffID: "staff-005", StaffName: "Remi", Role: rbac.RoleHost, DayOffset: 5, StartTime: "19:00", EndTime: "01:00"},
		{ID: "avail-007", StaffID: "staff-006", StaffName: "Ivy", Role: rbac.RoleHost, DayOffset: 5, StartTime: "20:00", EndTime: "02:00"},
		{ID: "avail-008", StaffID: "staff-006", StaffName: "Ivy", Role: rbac.RoleHost, DayOffset: 6, StartTime: "21:00", EndTime: "03:00"},
	}
}

// Pairings returns the proposed DJ/host matches for upcoming events.
func Pairings() []Pairing {
	return []Pairing{
		{ID: "pair-001", EventName: "Techno Tuesday", DayOffset: 4, DJName: "DJ Apex", HostName: "Remi"},
		{ID: "pair-002", EventName: "Chill Friday", DayOffset: 5, DJName: "DJ Apex", HostName: "Ivy"},
		{ID: "pair-003", EventName: "Weekend Rave", DayOffset: 6, DJName: "DJ Caspian", HostName: "Ivy"},
	}
}

// RevenueTrend returns the six-week revenue series for analytics.
func RevenueTrend() []WeekRevenue {
	return []WeekRevenue{
		{Week: "Jan W1", Revenue: 28000, Expenses: 3200, TipsClub: 12000, TipsDJ: 10000, TipsHost: 6000},
		{Week: "Jan W2", Revenue: 32000, Expenses: 2800, TipsClub: 14000, TipsDJ: 11000, TipsHost: 7000},
		{Week: "Jan W3", Revenue: 35000, Expenses: 4100, TipsClub: 15000, TipsDJ: 12000, TipsHost: 8000},
		{Week: "Jan W4", Revenue: 29000, Expenses: 3500, TipsClub: 13000, TipsDJ: 9500, TipsHost: 6500},
		{Week: "Feb W1", Revenue: 41000, Expenses: 3800, TipsClub: 18000, TipsDJ: 14000, TipsHost: 9000},
		{Week: "Feb W2", Revenue: 48200, Expenses: 3350, TipsClub: 21000, TipsDJ: 16000, TipsHost: 11200},
	}
}

// ExpenseTrend returns the six-week expense series for analytics.
func ExpenseTrend() []WeekExpenses {
	return []WeekExpenses{
		{Week: "Jan W1", Sploder: 1000, Fishbowl: 400, Assets: 1800},
		{Week: "Jan W2", Sploder: 800, Fishbowl: 500, Assets: 1500},
		{Week: "Jan W3", Sploder: 1200, Fishbowl: 600, Assets: 2300},
		{Week: "Jan W4", Sploder: 900, Fishbowl: 350, Assets: 2250},
		{Week: "Feb W1", Sploder: 1100, Fishbowl: 500, Assets: 2200},
		{Week: "Feb W2", Sploder: 800, Fishbowl: 550, Assets: 2000},
	}
}

// PeakHours returns the hourly guest/tip analysis for a typical night.
func PeakHours() []PeakHour {
	return []PeakHour{
		{Hour: "18:00", Guests: 8, Tips: 200},
		{Hour: "19:00", Guests: 15, Tips: 800},
		{Hour: "20:00", Guests: 28, Tips: 2200},
		{Hour: "21:00", Guests: 42, Tips: 4500},
		{Hour: "22:00", Guests: 55, Tips: 6800},
		{Hour: "23:00", Guests: 58, Tips: 7200},
		{Hour: "00:00", Guests: 52, Tips: 5800},
		{Hour: "01:00", Guests: 38, Tips: 3500},
		{Hour: "02:00", Guests: 20, Tips: 1200},
		{Hour: "03:00", Guests: 8, Tips: 400},
	}
}

// EventROIs returns the per-event return-on-investment table.
func EventROIs() []EventROI {
	return []EventROI{
		{Event: "Neon Nights", Revenue: 12500, Cost: 800, Attendees: 48, ROI: 14.6},
		{Event: "Ladies Night", Revenue: 9800, Cost: 550, Attendees: 55, ROI: 16.8},
		{Event: "Lo-Fi Lounge", Revenue: 6200, Cost: 400, Attendees: 32, ROI: 14.5},
		{Event: "Techno Tuesday", Revenue: 8400, Cost: 600, Attendees: 40, ROI: 13.0},
		{Event: "Weekend Rave", Revenue: 15000, Cost: 1200, Attendees: 58, ROI: 11.5},
	}
}

// AuditLog returns the simulated system log, timestamped relative to now.
func AuditLog(now time.Time) []LogEntry {
	return []LogEntry{
		{Timestamp: now.Add(-2 * time.Minute), Level: "info", Actor: "Nova", Message: "confirmed event Neon Nights"},
		{Timestamp: now.Add(-8 * time.Minute), Level: "info", Actor: "Lyra", Message: "published schedule for next week"},
		{Timestamp: now.Add(-14 * time.Minute), Level: "warn", Actor: "system", Message: "shift-010 declined by Ivy, slot unfilled"},
		{Timestamp: now.Add(-31 * time.Minute), Level: "info", Actor: "Zane", Message: "updated tip jar split 60/25/15"},
		{Timestamp: now.Add(-48 * time.Minute), Level: "info", Actor: "Echo", Message: "created draft event Lo-Fi Lounge"},
		{Timestamp: now.Add(-62 * time.Minute), Level: "warn", Actor: "system", Message: "stream relay reconnected after 4s drop"},
		{Timestamp: now.Add(-75 * time.Minute), Level: "info", Actor: "Nova", Message: "approved expense DJ Booth Redesign Props"},
		{Timestamp: now.Add(-91 * time.Minute), Level: "info", Actor: "Vera", Message: "exported weekly revenue report"},
	}
}
