package posts

// Post is one entry of the demo feed. User is set after the join.
type Post struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
	User   *User  `json:"user,omitempty"`
}

type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Address  Address `json:"address"`
	Company  Company `json:"company"`
}

type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// Source tells where a result came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Result is a joined post list.
type Result struct {
	Posts  []Post `json:"posts"`
	Source Source `json:"source"`
}

// Join attaches each post's user by UserID. Posts without a matching user
// keep a nil User.
func Join(posts []Post, users []User) []Post {
	byID := make(map[int]*User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	out := make([]Post, len(posts))
	for i, p := range posts {
		if u, ok := byID[p.UserID]; ok {
			uc := *u
			p.User = &uc
		}
		out[i] = p
	}
	return out
}
