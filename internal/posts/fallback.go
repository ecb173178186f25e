package posts

func fallbackUsers() []User {
	return []User{
		{
			ID:       1,
			Name:     "Leanne Graham",
			Username: "Bret",
			Email:    "Sincere@april.biz",
			Phone:    "1-770-736-8031 x56442",
			Website:  "hildegard.org",
			Address: Address{
				Street:  "Kulas Light",
				Suite:   "Apt. 556",
				City:    "Gwenborough",
				Zipcode: "92998-3874",
				Geo:     Geo{Lat: "-37.3159", Lng: "81.1496"},
			},
			Company: Company{
				Name:        "Romaguera-Crona",
				CatchPhrase: "Multi-layered client-server neural-net",
				BS:          "harness real-time e-markets",
			},
		},
		{
			ID:       2,
			Name:     "Ervin Howell",
			Username: "Antonette",
			Email:    "Shanna@melissa.tv",
			Phone:    "010-692-6593 x09125",
			Website:  "anastasia.net",
			Address: Address{
				Street:  "Victor Plains",
				Suite:   "Suite 879",
				City:    "Wisokyburgh",
				Zipcode: "90566-7771",
				Geo:     Geo{Lat: "-43.9509", Lng: "-34.4618"},
			},
			Company: Company{
				Name:        "Deckow-Crist",
				CatchPhrase: "Proactive didactic contingency",
				BS:          "synergize scalable supply-chains",
			},
		},
	}
}

func fallbackPosts() []Post {
	return []Post{
		{ID: 1, UserID: 1, Title: "Welcome to Baatchit", Body: "Chats, posts and your profile, all from the terminal."},
		{ID: 2, UserID: 1, Title: "Offline mode", Body: "The feed could not be reached, so you are seeing a few saved posts."},
		{ID: 3, UserID: 1, Title: "Favorites", Body: "Press f on a chat to pin it to the top of your list."},
		{ID: 4, UserID: 2, Title: "Dark mode", Body: "Press t anywhere to switch between the light and dark themes."},
		{ID: 5, UserID: 2, Title: "Stay in touch", Body: "Replies arrive a few seconds after you send a message."},
	}
}

// Fallback returns the fixed dataset used when the remote feed fails.
func Fallback() Result {
	return Result{Posts: Join(fallbackPosts(), fallbackUsers()), Source: SourceFallback}
}
