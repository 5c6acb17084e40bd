package user

// wrongPasswordQuips are shown, one at random, when the access password is wrong.
var wrongPasswordQuips = []string{
	"Password is wrong.",
	"Still wrong.",
	"You're not getting this, are you?",
	"That's... not it either.",
	"Try again, maybe with feeling.",
	"Nope. Swing and a miss.",
	"Getting colder.",
	"Your keyboard might be cursed.",
	"Did your cat walk across the keyboard?",
	"Close! Just kidding. Not close.",
	"Maybe take a break?",
	"Guessing isn't a strategy.",
	"Hot tip: thinking helps.",
	"Each wrong try makes me stronger.",
	"You're not hacking the Pentagon here.",
	"Think. Then type. In that order.",
	"Nope. Not even in the ballpark.",
	"Have you considered using the correct password?",
	"The password is judging you.",
	"Even autocorrect gave up on you.",
	"Wrong. But enthusiastic!",
	"Would you like a hint? (Too bad!)",
	"Nope. Still nope.",
	"404: Password not found.",
	"Plot twist: there is no password.",
	"That's a great password for a different account.",
	"Nice try, Gandalf. But the password shall not pass.",
}

// Quip returns the wrong-password quip for index i, wrapping around.
func Quip(i int) string {
	if i < 0 {
		i = -i
	}
	return wrongPasswordQuips[i%len(wrongPasswordQuips)]
}

// QuipCount is the number of available quips.
func QuipCount() int {
	return len(wrongPasswordQuips)
}
