package database

import (
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"socialfeed-api/models"
)

// expectedSeedUserIDs is the fixed set the completeness check runs against.
// The seed batch itself contains a few extra users beyond this set; the check
// only cares that the core demo accounts exist.
var expectedSeedUserIDs = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}

// Seed bulk-inserts the demo dataset when any of the expected users are
// missing. Every insert ignores conflicts, so a partially seeded store is
// completed rather than duplicated. Order matters: posts and messages
// reference users from the same batch.
func Seed(db *gorm.DB) error {
	var existingIDs []string
	if err := db.Model(&models.User{}).Pluck("id", &existingIDs).Error; err != nil {
		return err
	}

	missing := missingUserIDs(existingIDs)
	if len(missing) == 0 {
		log.Println("Database already contains seed data, skipping")
		return nil
	}
	log.Printf("Database is incomplete, seeding (missing user IDs: %s)", strings.Join(missing, ", "))

	now := time.Now()

	users := seedUsers(now)
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&users).Error; err != nil {
		return err
	}
	posts := seedPosts(now)
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&posts).Error; err != nil {
		return err
	}
	messages := seedMessages(now)
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&messages).Error; err != nil {
		return err
	}

	// Informational only; not used for control flow.
	var userCount, postCount, messageCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Post{}).Count(&postCount)
	db.Model(&models.Message{}).Count(&messageCount)
	log.Printf("Seeding completed: %d users, %d posts, %d messages", userCount, postCount, messageCount)

	return nil
}

func missingUserIDs(existing []string) []string {
	present := make(map[string]bool, len(existing))
	for _, id := range existing {
		present[id] = true
	}

	var missing []string
	for _, id := range expectedSeedUserIDs {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

func strptr(s string) *string {
	return &s
}

func seedUsers(now time.Time) []models.User {
	type row struct {
		id, username, image, bio string
	}
	rows := []row{
		{"1", "ee_person", "assets/images/profiles/profile_1.jpg", "What does it take to install PendoSDK?"},
		{"2", "demo_user", "assets/images/profiles/profile_2.jpg", "Demo user account for testing"},
		{"3", "test_user", "assets/images/profiles/profile_3.jpg", "Another test user"},
		{"4", "mystic_phoenix", "assets/images/profiles/profile_4.jpg", "Digital nomad exploring the intersection of technology and creativity. Always learning, always growing."},
		{"5", "quantum_quasar", "assets/images/profiles/profile_5.jpg", "Tech enthusiast and coffee addict. Building the future one line of code at a time."},
		{"6", "cosmic_coder", "assets/images/profiles/profile_6.jpg", "Full-stack developer by day, amateur astronomer by night. Always looking up."},
		{"7", "neural_ninja", "assets/images/profiles/profile_7.jpg", "AI researcher and martial arts practitioner. Finding balance in chaos."},
		{"8", "cyber_sage", "assets/images/profiles/profile_8.jpg", "Cybersecurity expert and philosophy enthusiast. Protecting digital frontiers."},
		{"9", "binary_bard", "assets/images/profiles/profile_9.jpg", "Code poet and music lover. Turning algorithms into art."},
		{"10", "data_druid", "assets/images/profiles/profile_10.jpg", "Data scientist and nature enthusiast. Finding patterns in chaos."},
		{"11", "pixel_pioneer", "assets/images/profiles/profile_11.jpg", "UI/UX designer and digital artist. Creating beautiful experiences."},
		{"12", "code_crusader", "assets/images/profiles/profile_12.jpg", "Software engineer and problem solver. Turning coffee into code."},
		{"13", "tech_titan", "assets/images/profiles/profile_13.jpg", "Tech entrepreneur and innovation enthusiast. Building the future."},
	}

	users := make([]models.User, 0, len(rows))
	for _, r := range rows {
		users = append(users, models.User{
			ID:           r.id,
			Username:     r.username,
			ProfileImage: strptr(r.image),
			Biography:    strptr(r.bio),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return users
}

func seedPosts(now time.Time) []models.Post {
	type row struct {
		id, authorID, content string
		image                 string
		likes                 int
	}
	rows := []row{
		{"1", "1", "If we bypass the neural interface, we can get to the SSD array through the redundant SSD circuit!", "assets/images/posts/post_1.jpg", 42},
		{"2", "1", "The quantum matrix is rebooting the virtual firewall through the neural network!", "", 35},
		{"3", "2", "A succulent roasted quail, marinated in a blend of exotic spices and served with a side of caramelized root vegetables.", "assets/images/posts/post_2.jpg", 28},
		{"4", "2", "The mainframe is synthesizing the virtual protocol through the redundant interface!", "", 19},
		{"5", "3", "The best way to predict the future is to create it.", "assets/images/posts/post_3.jpg", 45},
		{"6", "3", "A delicate sea bass fillet, poached in a fragrant broth of lemongrass and ginger.", "", 31},
		{"7", "4", "The firewall is overriding the neural protocol through the quantum circuit!", "assets/images/posts/post_4.jpg", 38},
		{"8", "4", "Success is not final, failure is not fatal: it is the courage to continue that counts.", "", 47},
		{"9", "5", "A rich chocolate soufflé, served with a cloud of whipped cream and fresh berries.", "assets/images/posts/post_5.jpg", 33},
		{"10", "5", "The matrix is synthesizing the virtual array through the redundant firewall!", "", 26},
		{"11", "6", "The only way to do great work is to love what you do.", "assets/images/posts/post_6.jpg", 49},
		{"12", "6", "A fragrant curry of tender lamb, simmered in coconut milk and aromatic spices.", "", 37},
		{"13", "7", "The protocol is bypassing the neural array through the quantum interface!", "assets/images/posts/post_7.jpg", 41},
		{"14", "7", "A delicate tempura of seasonal vegetables, served with a spicy dipping sauce.", "", 29},
		{"15", "8", "The circuit is synthesizing the virtual matrix through the redundant protocol!", "assets/images/posts/post_8.jpg", 36},
		{"16", "8", "Innovation distinguishes between a leader and a follower.", "", 44},
		{"17", "9", "A classic beef wellington, wrapped in flaky pastry and served with a rich wine sauce.", "assets/images/posts/post_9.jpg", 39},
		{"18", "9", "The interface is overriding the quantum firewall through the neural circuit!", "", 27},
		{"19", "10", "The future belongs to those who believe in the beauty of their dreams.", "assets/images/posts/post_10.jpg", 46},
		{"20", "10", "A refreshing ceviche of fresh fish, marinated in citrus and herbs.", "", 32},
	}

	posts := make([]models.Post, 0, len(rows))
	for i, r := range rows {
		post := models.Post{
			ID:       r.id,
			AuthorID: r.authorID,
			Content:  r.content,
			// Stagger creation times so the feed has a stable order.
			CreatedAt:  now.Add(-time.Duration(len(rows)-i) * time.Minute),
			LikesCount: r.likes,
		}
		if r.image != "" {
			post.ImageURI = strptr(r.image)
		}
		posts = append(posts, post)
	}
	return posts
}

func seedMessages(now time.Time) []models.Message {
	type row struct {
		id, senderID, receiverID, content string
		age                               time.Duration
	}
	rows := []row{
		{"1", "2", "1", "Hey! How are you doing? I wanted to discuss the project timeline.", 48 * time.Hour},
		{"2", "1", "2", "Hi! I'm doing great. What would you like to discuss?", 47 * time.Hour},
		{"3", "2", "1", "I was thinking we could set up a meeting to go over the requirements.", 46 * time.Hour},
		{"4", "3", "1", "The meeting is scheduled for tomorrow at 2 PM.", 24 * time.Hour},
		{"5", "1", "3", "Perfect, I'll be there!", 23*time.Hour + 30*time.Minute},
		{"6", "4", "1", "Hey! I saw your post about the neural interface. That's fascinating!", 12 * time.Hour},
		{"7", "1", "4", "Thanks! Yes, it's a really interesting concept.", 11 * time.Hour},
		{"8", "5", "1", "Would you like to collaborate on a new project?", 6 * time.Hour},
		{"9", "1", "5", "I'd love to! What do you have in mind?", 5 * time.Hour},
		{"10", "6", "1", "Your latest post about quantum computing was really insightful.", 3 * time.Hour},
	}

	messages := make([]models.Message, 0, len(rows))
	for _, r := range rows {
		messages = append(messages, models.Message{
			ID:         r.id,
			SenderID:   r.senderID,
			ReceiverID: r.receiverID,
			Content:    r.content,
			CreatedAt:  now.Add(-r.age),
		})
	}
	return messages
}
