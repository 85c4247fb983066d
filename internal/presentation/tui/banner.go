package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for GymBuddy.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Energetic orange-to-red gradient
	s1 := termenv.String("   ____                 ____            _     _       ").Foreground(p.Color("#fbbf24"))
	s2 := termenv.String("  / ___|_   _ _ __ ___ | __ ) _   _  __| | __| |_   _ ").Foreground(p.Color("#f59e0b"))
	s3 := termenv.String(" | |  _| | | | '_ ` _ \\|  _ \\| | | |/ _` |/ _` | | | |").Foreground(p.Color("#f97316"))
	s4 := termenv.String(" | |_| | |_| | | | | | | |_) | |_| | (_| | (_| | |_| |").Foreground(p.Color("#ef4444"))
	s5 := termenv.String("  \\____|\\__, |_| |_| |_|____/ \\__,_|\\__,_|\\__,_|\\__, |").Foreground(p.Color("#dc2626"))
	s6 := termenv.String("        |___/                                   |___/ ").Foreground(p.Color("#b91c1c"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
