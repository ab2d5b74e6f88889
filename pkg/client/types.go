package client

// Resource records mirror the server's JSON shapes. Beyond the session
// invariant, these are opaque pass-through records: the SDK does not
// validate or transform them.

// User is a public account profile.
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role"`
	IsSeller   bool   `json:"isSeller"`
	IsAdmin    bool   `json:"isAdmin"`
	FullName   string `json:"full_name,omitempty"`
	Country    string `json:"country,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Desc       string `json:"desc,omitempty"`
	ProfilePic string `json:"profile_pic,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// Gig is a sellable service listing. Rating is the server-computed average;
// it is 0 when the gig has no reviews.
type Gig struct {
	ID            string   `json:"id"`
	UserID        string   `json:"user_id"`
	Title         string   `json:"title"`
	Desc          string   `json:"desc"`
	Category      string   `json:"category"`
	Price         int      `json:"price"`
	Cover         string   `json:"cover"`
	Images        []string `json:"images"`
	Features      []string `json:"features"`
	DeliveryDays  int      `json:"delivery_days"`
	RevisionCount int      `json:"revision_count"`
	TotalStars    int      `json:"total_stars"`
	StarNumber    int      `json:"star_number"`
	Rating        float64  `json:"rating"`
	Sales         int      `json:"sales"`
	CreatedAt     string   `json:"created_at"`
}

// Order records a purchase of a gig.
type Order struct {
	ID            string `json:"id"`
	GigID         string `json:"gig_id"`
	Img           string `json:"img"`
	Title         string `json:"title"`
	Price         int    `json:"price"`
	SellerID      string `json:"seller_id"`
	BuyerID       string `json:"buyer_id"`
	Status        string `json:"status"`
	PaymentIntent string `json:"payment_intent,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// Conversation is a chat thread between one seller and one buyer.
type Conversation struct {
	ID           string `json:"id"`
	SellerID     string `json:"sellerId"`
	BuyerID      string `json:"buyerId"`
	ReadBySeller bool   `json:"readBySeller"`
	ReadByBuyer  bool   `json:"readByBuyer"`
	LastMessage  string `json:"lastMessage,omitempty"`
	UpdatedAt    string `json:"updatedAt"`
}

// Message is one persisted chat entry.
type Message struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversationId"`
	UserID         string `json:"userId"`
	Desc           string `json:"desc"`
	CreatedAt      string `json:"createdAt"`
}

// Review is a buyer's rating of a gig.
type Review struct {
	ID        string `json:"id"`
	GigID     string `json:"gigId"`
	UserID    string `json:"userId"`
	Star      int    `json:"star"`
	Desc      string `json:"desc"`
	CreatedAt string `json:"createdAt"`
}
