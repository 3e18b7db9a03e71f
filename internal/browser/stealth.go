package browser

import (
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

// RandomDelay sleeps for a random duration between min and max milliseconds.
func RandomDelay(min, max int) {
	time.Sleep(time.Duration(rand.Intn(max-min+1)+min) * time.Millisecond)
}

// HumanScroll scrolls the page down in uneven steps, then nudges back up.
func HumanScroll(page playwright.Page) error {
	for i := 0; i < 5; i++ {
		if _, err := page.Evaluate("window.scrollBy(0, window.innerHeight / 2)"); err != nil {
			return err
		}
		RandomDelay(500, 1500)
	}
	_, err := page.Evaluate("window.scrollBy(0, -200)")
	return err
}

// MouseJiggle moves the pointer to a few random in-viewport positions so a
// long sequence of detail visits does not look idle.
func MouseJiggle(page playwright.Page) error {
	size := page.ViewportSize()
	if size == nil {
		return nil
	}
	for i := 0; i < 3; i++ {
		x := float64(rand.Intn(size.Width))
		y := float64(rand.Intn(size.Height))
		if err := page.Mouse().Move(x, y); err != nil {
			return err
		}
		RandomDelay(100, 300)
	}
	return nil
}
