package game

const (
	left  = -1
	right = 1
)

// Cycler walks an ordered list of player names, wrapping in either
// direction. The first element is the game's creator and starts as the
// current one.
type Cycler struct {
	elements  []string
	current   int
	direction int
}

func NewCycler(elements []string) *Cycler {
	owned := make([]string, len(elements))
	copy(owned, elements)
	return &Cycler{
		elements:  owned,
		current:   0,
		direction: right,
	}
}

func (c *Cycler) Append(element string) {
	c.elements = append(c.elements, element)
}

func (c *Cycler) Count() int {
	return len(c.elements)
}

func (c *Cycler) Current() string {
	return c.elements[c.current]
}

func (c *Cycler) Direction() int {
	return c.direction
}

func (c *Cycler) Elements() []string {
	elements := make([]string, len(c.elements))
	copy(elements, c.elements)
	return elements
}

func (c *Cycler) ForEach(function func(string)) {
	for _, element := range c.elements {
		function(element)
	}
}

func (c *Cycler) Next() string {
	elementCount := len(c.elements)
	c.current = (c.current + c.direction + elementCount) % elementCount
	return c.elements[c.current]
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}
