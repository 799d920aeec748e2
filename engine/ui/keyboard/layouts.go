package keyboard

import "unicode/utf8"

// Key is one key cap: what it types without and with shift.
type Key struct {
	Lower, Upper rune
	lower, upper string
}

// Label is the text on the cap.
func (k Key) Label(shift bool) string {
	if shift {
		return k.upper
	}
	return k.lower
}

func (k Key) Rune(shift bool) rune {
	if shift {
		return k.Upper
	}
	return k.Lower
}

// Layout is a number row and three letter rows. The number row may be
// empty.
type Layout struct {
	Name   string
	NumRow []Key
	Row1   []Key
	Row2   []Key
	Row3   []Key
}

// keys pairs the runes of lower and upper position by position.
func keys(lower, upper string) []Key {
	if utf8.RuneCountInString(lower) != utf8.RuneCountInString(upper) {
		panic("keyboard: unbalanced key row " + lower)
	}
	out := make([]Key, 0, utf8.RuneCountInString(lower))
	ur := []rune(upper)
	i := 0
	for _, l := range lower {
		u := ur[i]
		out = append(out, Key{Lower: l, Upper: u, lower: string(l), upper: string(u)})
		i++
	}
	return out
}

func concat(rows ...[]Key) []Key {
	var out []Key
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}

var (
	numUS     = keys("1234567890", "!@#$%^&*()")
	numUK     = keys("1234567890", "!\"£$%^&*()")
	numDE     = keys("1234567890", "!\"§$%&/()=")
	numFR     = keys("1234567890", "&2\"'(-7_90")
	qwertyR1  = keys("qwertyuiop", "QWERTYUIOP")
	qwertyR2  = keys("asdfghjkl", "ASDFGHJKL")
	qwertyR3  = keys("zxcvbnm", "ZXCVBNM")
	qwertzR1  = keys("qwertzuiop", "QWERTZUIOP")
	qwertzR3  = keys("yxcvbnm", "YXCVBNM")
	azertyR1  = keys("azertyuiop", "AZERTYUIOP")
	azertyR2  = keys("qsdfghjklm", "QSDFGHJKLM")
	azertyR3  = keys("wxcvbn", "WXCVBN")
	specialR1 = keys("[]", "{}")
	specialR2 = keys(";'#", ":@~")
	specialR3 = keys(",./", "<>?")
)

func QWERTY() *Layout {
	return &Layout{"qwerty", numUS, qwertyR1, qwertyR2, qwertyR3}
}

func QWERTYWithSpecial() *Layout {
	return &Layout{"qwerty-special", numUS,
		concat(qwertyR1, specialR1), concat(qwertyR2, specialR2), concat(qwertyR3, specialR3)}
}

func QWERTYUK() *Layout {
	return &Layout{"qwerty-uk", numUK, qwertyR1, qwertyR2, qwertyR3}
}

func QWERTYUKWithSpecial() *Layout {
	return &Layout{"qwerty-uk-special", numUK,
		concat(qwertyR1, specialR1), concat(qwertyR2, specialR2), concat(qwertyR3, specialR3)}
}

func QWERTZ() *Layout {
	return &Layout{"qwertz", numDE, qwertzR1, qwertyR2, qwertzR3}
}

func QWERTZWithSpecial() *Layout {
	return &Layout{"qwertz-special", numDE,
		concat(qwertzR1, keys("ü+", "Ü*")),
		concat(qwertyR2, keys("öä#", "ÖÄ'")),
		concat(qwertzR3, keys(",.-", ";:_"))}
}

func AZERTY() *Layout {
	return &Layout{"azerty", numFR, azertyR1, azertyR2, azertyR3}
}

func AZERTYWithSpecial() *Layout {
	return &Layout{"azerty-special", numFR, azertyR1, azertyR2,
		concat(azertyR3, keys(",;:!", "?./§"))}
}

// Layouts lists every built-in layout.
func Layouts() []*Layout {
	return []*Layout{
		QWERTY(), QWERTYWithSpecial(),
		QWERTYUK(), QWERTYUKWithSpecial(),
		QWERTZ(), QWERTZWithSpecial(),
		AZERTY(), AZERTYWithSpecial(),
	}
}

// ByName finds a built-in layout.
func ByName(name string) (*Layout, bool) {
	for _, l := range Layouts() {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}
