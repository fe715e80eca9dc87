// Package intro holds the first katas: printing, objects, methods and
// method parameters.
package intro

// Greeting is the first line every learner prints.
func Greeting() string {
	return "Hello HackerRank!!"
}

// Self is the printed name of the top-level object scripts run in.
func Self() string {
	return "main"
}

// OddOrEven reports whether number is even. Despite the name it answers
// the even question only.
func OddOrEven(number int) bool {
	return number%2 == 0
}

// InRange reports whether b <= a <= c.
func InRange(a, b, c int) bool {
	return b <= a && a <= c
}
