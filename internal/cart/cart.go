package cart

// Snapshot is the slice of an artwork a cart line carries. Prices are copied
// in so a later catalog edit doesn't change what the visitor saw.
type Snapshot struct {
	ArtworkID   string `json:"artwork_id"`
	Title       string `json:"title"`
	Price       int64  `json:"price"`
	Medium      string `json:"medium"`
	YearCreated int    `json:"year_created"`
	ImageURL    string `json:"image_url"`
}

type Line struct {
	Artwork  Snapshot `json:"artwork"`
	Quantity int      `json:"quantity"`
}

// State is a cart's full contents. All reducer functions below are pure:
// they return a new State and never mutate their input.
type State struct {
	Lines []Line `json:"lines"`
}

const (
	// Orders above this subtotal ship free.
	FreeShippingThreshold = 100000
	// Flat fee below the threshold, in yen.
	FlatShippingFee = 3000
)

// Add inserts a new line with quantity 1. Each artwork is one physical piece,
// so adding an id already in the cart is a no-op.
func Add(s State, artwork Snapshot) State {
	for _, line := range s.Lines {
		if line.Artwork.ArtworkID == artwork.ArtworkID {
			return s
		}
	}
	lines := make([]Line, 0, len(s.Lines)+1)
	lines = append(lines, s.Lines...)
	lines = append(lines, Line{Artwork: artwork, Quantity: 1})
	return State{Lines: lines}
}

// Remove drops the line for artworkID, no-op when absent.
func Remove(s State, artworkID string) State {
	lines := make([]Line, 0, len(s.Lines))
	for _, line := range s.Lines {
		if line.Artwork.ArtworkID != artworkID {
			lines = append(lines, line)
		}
	}
	return State{Lines: lines}
}

// SetQuantity overwrites a line's quantity. Zero or negative behaves as
// Remove.
func SetQuantity(s State, artworkID string, quantity int) State {
	if quantity <= 0 {
		return Remove(s, artworkID)
	}
	lines := make([]Line, len(s.Lines))
	for i, line := range s.Lines {
		if line.Artwork.ArtworkID == artworkID {
			line.Quantity = quantity
		}
		lines[i] = line
	}
	return State{Lines: lines}
}

func Clear(State) State {
	return State{}
}

func TotalAmount(s State) int64 {
	var total int64
	for _, line := range s.Lines {
		total += line.Artwork.Price * int64(line.Quantity)
	}
	return total
}

func TotalItemCount(s State) int {
	var count int
	for _, line := range s.Lines {
		count += line.Quantity
	}
	return count
}

func ShippingFee(subtotal int64) int64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}
