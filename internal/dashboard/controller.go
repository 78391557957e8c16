package dashboard

import (
	"context"
	"errors"

	"raeesatours/internal/db"
	"raeesatours/internal/entities"
)

// Tab selects which dataset the dashboard is showing. The two are mutually
// exclusive; only the active tab's data is fetched and displayed.
type Tab string

const (
	TabRegistrations Tab = "registrations"
	TabContacts      Tab = "contacts"
)

// ErrConfirmationRequired is returned when a delete is attempted without a
// pending confirmed request.
var ErrConfirmationRequired = errors.New("deletion must be confirmed first")

// Controller drives the admin list views: pagination, filtering, tab
// switching and confirm-gated deletion. Fetch failures keep the last known
// good rows and surface the error alongside them.
type Controller struct {
	client *Client

	tab         Tab
	page        int
	totalPages  int
	destination string
	startDate   string
	endDate     string

	registrations []db.Registration
	contacts      []db.ContactMessage
	lastError     error

	// pendingDelete holds the id awaiting confirmation, "" when none.
	pendingDelete string

	// generation guards against a stale fetch overwriting newer state when
	// refetch triggers overlap.
	generation uint64
}

func NewController(client *Client) *Controller {
	return &Controller{
		client:     client,
		tab:        TabRegistrations,
		page:       1,
		totalPages: 1,
	}
}

func (c *Controller) ActiveTab() Tab                   { return c.tab }
func (c *Controller) Page() int                        { return c.page }
func (c *Controller) TotalPages() int                  { return c.totalPages }
func (c *Controller) Registrations() []db.Registration { return c.registrations }
func (c *Controller) Contacts() []db.ContactMessage    { return c.contacts }
func (c *Controller) LastError() error                 { return c.lastError }

// SetTab switches the active dataset and fetches it.
func (c *Controller) SetTab(ctx context.Context, tab Tab) error {
	if tab != TabRegistrations && tab != TabContacts {
		return errors.New("unknown tab")
	}
	c.tab = tab
	c.pendingDelete = ""
	return c.Refresh(ctx)
}

// SetPage moves to the given 1-based page and refetches.
func (c *Controller) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	c.page = page
	return c.Refresh(ctx)
}

// SetDestinationFilter applies a destination substring filter and returns to
// the first page.
func (c *Controller) SetDestinationFilter(ctx context.Context, destination string) error {
	c.destination = destination
	c.page = 1
	return c.Refresh(ctx)
}

// SetDateRange applies an inclusive departure-date range filter and returns
// to the first page. Both bounds must be set for the filter to apply.
func (c *Controller) SetDateRange(ctx context.Context, start, end string) error {
	c.startDate = start
	c.endDate = end
	c.page = 1
	return c.Refresh(ctx)
}

// Refresh fetches the active tab's current page. A response belonging to a
// superseded fetch is dropped instead of overwriting fresher state.
func (c *Controller) Refresh(ctx context.Context) error {
	c.generation++
	gen := c.generation

	switch c.tab {
	case TabContacts:
		contacts, err := c.client.ListContacts(ctx)
		if gen != c.generation {
			return nil
		}
		if err != nil {
			c.lastError = err
			return err
		}
		c.contacts = contacts
	default:
		query := entities.RegistrationListQuery{
			Page:        c.page,
			Destination: c.destination,
			StartDate:   c.startDate,
			EndDate:     c.endDate,
		}
		registrations, pagination, err := c.client.ListRegistrations(ctx, query)
		if gen != c.generation {
			return nil
		}
		if err != nil {
			c.lastError = err
			return err
		}
		c.registrations = registrations
		if pagination != nil {
			c.totalPages = pagination.Pages
			if c.totalPages < 1 {
				c.totalPages = 1
			}
		}
	}

	c.lastError = nil
	return nil
}

// RequestDelete marks a record for deletion; nothing is sent until
// ConfirmDelete is called.
func (c *Controller) RequestDelete(id string) {
	c.pendingDelete = id
}

// CancelDelete discards the pending confirmation.
func (c *Controller) CancelDelete() {
	c.pendingDelete = ""
}

// PendingDelete returns the id awaiting confirmation, "" when none.
func (c *Controller) PendingDelete() string {
	return c.pendingDelete
}

// ConfirmDelete issues the delete for the pending record. On success the row
// is removed locally; deleting the last row of a page beyond the first steps
// back one page, otherwise the current page is refetched. On failure the
// list is left as it was and the error surfaced.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	if c.pendingDelete == "" {
		return ErrConfirmationRequired
	}
	id := c.pendingDelete
	c.pendingDelete = ""

	switch c.tab {
	case TabContacts:
		if err := c.client.DeleteContact(ctx, id); err != nil {
			c.lastError = err
			return err
		}
		c.contacts = removeContact(c.contacts, id)
		return c.Refresh(ctx)
	default:
		if err := c.client.DeleteRegistration(ctx, id); err != nil {
			c.lastError = err
			return err
		}
		c.registrations = removeRegistration(c.registrations, id)
		if len(c.registrations) == 0 && c.page > 1 {
			c.page--
		}
		return c.Refresh(ctx)
	}
}

// UpdateContactStatus patches one message's status and notes and applies the
// updated document in place.
func (c *Controller) UpdateContactStatus(ctx context.Context, id, status, adminNotes string) error {
	updated, err := c.client.UpdateContact(ctx, id, entities.ContactUpdateRequest{
		Status:     status,
		AdminNotes: adminNotes,
	})
	if err != nil {
		c.lastError = err
		return err
	}
	for i := range c.contacts {
		if c.contacts[i].ID == updated.ID {
			c.contacts[i] = *updated
			break
		}
	}
	c.lastError = nil
	return nil
}

func removeRegistration(list []db.Registration, id string) []db.Registration {
	out := list[:0]
	for _, r := range list {
		if r.ID.Hex() != id {
			out = append(out, r)
		}
	}
	return out
}

func removeContact(list []db.ContactMessage, id string) []db.ContactMessage {
	out := list[:0]
	for _, m := range list {
		if m.ID.Hex() != id {
			out = append(out, m)
		}
	}
	return out
}
