// Package report prints the quaternion self-check that runs before the
// viewer opens: lengths, normalization, conjugates, inverses and identity
// checks for two sample quaternions.
package report

import (
	"fmt"
	"io"

	"quatview/internal/quat"
)

// Write prints the self-check for q1 and q2 to w.
func Write(w io.Writer, q1, q2 quat.Quaternion) error {
	p := &printer{w: w}

	p.printf("q1%v;   q2%v;\n", q1, q2)

	p.println("Length: ")
	p.printf("Length of q1: %s, is unit: %d\n", num(q1.Length()), bit(q1.IsUnit()))
	p.printf("Length of q2: %s, is unit: %d\n", num(q2.Length()), bit(q2.IsUnit()))

	n1, n2 := q1.Normalize(), q2.Normalize()
	p.println("Normalize: ")
	p.printf("Length of normalize q1: %s, is unit: %d\n", num(n1.Length()), bit(n1.IsUnit()))
	p.printf("Length of normalize q2: %s, is unit: %d\n", num(n2.Length()), bit(n2.IsUnit()))

	c1, c2 := q1.Conjugate(), q2.Conjugate()
	p.println("Conjugate: ")
	p.printf("Conjugate of q1: %v, is unit: %d\n", c1, bit(c1.IsUnit()))
	p.printf("Conjugate of q2: %v, is unit: %d\n", c2, bit(c2.IsUnit()))

	p.println("Inverse: ")
	inv1, err1 := q1.Inverse()
	inv2, err2 := q2.Inverse()
	p.inverse("q1", q1, inv1, err1, true)
	p.inverse("q2", q2, inv2, err2, false)

	p.again("q1", inv1, err1)
	p.again("q2", inv2, err2)
	p.println()

	id := quat.Identity()
	idInv, err := id.Inverse()
	p.printf("Identity Quaternion is identity: %d\n", bit(id.IsIdentity()))
	p.printf("Identity Quaternion * Identity Quaternion: %v\n", id.Mul(id))
	if err != nil {
		p.printf("Identity Quaternion * Inverse of Identity Quaternion: %v\n", err)
	} else {
		p.printf("Identity Quaternion * Inverse of Identity Quaternion: %v\n", id.Mul(idInv))
	}

	return p.err
}

// printer remembers the first write error so Write can check it once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}

// inverse prints q's inverse and the product that should come out as the
// identity. leftInverse picks inv*q over q*inv.
func (p *printer) inverse(name string, q, inv quat.Quaternion, err error, leftInverse bool) {
	if err != nil {
		p.printf("Inverse of %s: %v\n", name, err)
		return
	}
	check := q.Mul(inv)
	if leftInverse {
		check = inv.Mul(q)
	}
	p.printf("Inverse of %s: %v, check calculation: %v\n", name, inv, check)
}

func (p *printer) again(name string, inv quat.Quaternion, err error) {
	if err != nil {
		p.printf("Inverse again of %s: %v\n", name, err)
		return
	}
	back, err := inv.Inverse()
	if err != nil {
		p.printf("Inverse again of %s: %v\n", name, err)
		return
	}
	p.printf("Inverse again of %s: %v\n", name, back)
}

func num(f float64) string { return fmt.Sprintf("%.6g", f) }

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}
