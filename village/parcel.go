package village

import "fmt"

// Parcel is a pending delivery: the location it lies at and the location it
// must reach. Parcels are plain values; moving one means building a new one.
type Parcel struct {
	Place   string `yaml:"place"`
	Address string `yaml:"address"`
}

// Delivered reports whether the parcel has reached its address.
func (p Parcel) Delivered() bool { return p.Place == p.Address }

// String renders the parcel as "place→address".
func (p Parcel) String() string {
	return fmt.Sprintf("%s→%s", p.Place, p.Address)
}
