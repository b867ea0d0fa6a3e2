package domain

// PageState — состояние загрузки страницы.
type PageState string

const (
	PageLoading PageState = "loading"
	PageReady   PageState = "ready"
	PageError   PageState = "error"
)

// Page хранит состояние страницы: loading → ready или loading → error.
type Page struct {
	State PageState
	Error string
}

// NewPage создает страницу в состоянии loading.
func NewPage() Page {
	return Page{State: PageLoading}
}

// Ready переводит страницу в ready. Повторные переходы игнорируются.
func (p *Page) Ready() {
	if p.State == PageLoading {
		p.State = PageReady
	}
}

// Fail переводит страницу в error с сообщением.
func (p *Page) Fail(msg string) {
	if p.State == PageLoading {
		p.State = PageError
		p.Error = msg
	}
}

func (p *Page) IsReady() bool { return p.State == PageReady }

func (p *Page) IsError() bool { return p.State == PageError }

// DashboardView — данные главной страницы.
type DashboardView struct {
	Page
	Stats   *Stats
	Pending []*User
	Recent  []*AuditEntry
}

// UsersView — список пользователей с фильтром поиска.
type UsersView struct {
	Page
	Search string
	Users  []*User
	Total  int
}

// ApprovalsView — очередь пользователей, ожидающих одобрения.
type ApprovalsView struct {
	Page
	Pending []*User
}
