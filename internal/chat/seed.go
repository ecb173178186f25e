package chat

// SeedChats returns the chat list shown on first start.
func SeedChats() []Summary {
	return []Summary{
		{ID: "1", Name: "John Doe", LastMessage: "Hey, how are you doing?", Timestamp: "2m ago", Avatar: "👨‍💼", UnreadCount: 2},
		{ID: "2", Name: "Sarah Wilson", LastMessage: "Thanks for the help today!", Timestamp: "10m ago", Avatar: "👩‍💻", IsFavorite: true},
		{ID: "3", Name: "Team Group", LastMessage: "Meeting at 3 PM tomorrow", Timestamp: "1h ago", Avatar: "👥", UnreadCount: 5},
		{ID: "4", Name: "Mom", LastMessage: "Don't forget to call grandma", Timestamp: "2h ago", Avatar: "👩‍🦳", UnreadCount: 1, IsFavorite: true},
		{ID: "5", Name: "Alex Johnson", LastMessage: "The project looks great!", Timestamp: "1d ago", Avatar: "👨‍🎨"},
	}
}

// SeedFavorites returns the favorites matching SeedChats.
func SeedFavorites() []string {
	return []string{"2", "4"}
}
