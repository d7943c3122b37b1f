package repositories

// Store bundles the in-memory repositories that back the portal.
// A single Store is created at startup and shared by the seeder,
// the HTTP layer and the cron jobs.
type Store struct {
	Users         UserRepository
	Sessions      SessionRepository
	Units         UnitRepository
	Events        EventRepository
	Requests      RequestRepository
	Notifications NotificationRepository
}

// NewStore creates the full repository set
func NewStore() *Store {
	return &Store{
		Users:         NewUserRepository(),
		Sessions:      NewSessionRepository(),
		Units:         NewUnitRepository(),
		Events:        NewEventRepository(),
		Requests:      NewRequestRepository(),
		Notifications: NewNotificationRepository(),
	}
}
