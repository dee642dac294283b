package cart

import (
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type memoryBucket struct {
	encoded string
	saves   int
	err     error
}

func (b *memoryBucket) Restore(where interface{}) error {
	if b.encoded == "" {
		return nil
	}

	return json.Unmarshal([]byte(b.encoded), where)
}

func (b *memoryBucket) Save(data interface{}) error {
	if b.err != nil {
		return b.err
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}

	b.saves++
	b.encoded = string(encoded)
	return nil
}

func TestCart(t *testing.T) {
	Convey("Given an empty cart", t, func() {
		bucket := &memoryBucket{}
		c, err := Boot(bucket)
		So(err, ShouldBeNil)
		So(c.IsEmpty(), ShouldBeTrue)

		Convey("adding items persists them", func() {
			So(c.Add(CartItem{Id: "b", Name: "Mouse", Price: 4, Quantity: 1}), ShouldBeNil)
			So(c.Add(CartItem{Id: "a", Name: "Keyboard", Price: 10.5, Quantity: 2}), ShouldBeNil)
			So(c.Add(CartItem{Id: "a", Name: "Keyboard", Price: 10.5, Quantity: 1}), ShouldBeNil)

			So(bucket.saves, ShouldEqual, 3)
			So(c.Total(), ShouldEqual, 35.5)

			items := c.Items()
			So(len(items), ShouldEqual, 2)
			So(items[0].Id, ShouldEqual, "a")
			So(items[0].Quantity, ShouldEqual, 3)

			Convey("and a new cart restores them from the bucket", func() {
				restored, err := Boot(bucket)

				So(err, ShouldBeNil)
				So(restored.Items(), ShouldResemble, items)
			})

			Convey("removing decrements and finally drops the item", func() {
				removed, err := c.Remove("b")
				So(err, ShouldBeNil)
				So(removed, ShouldBeTrue)
				So(len(c.Items()), ShouldEqual, 1)

				removed, err = c.Remove("b")
				So(err, ShouldBeNil)
				So(removed, ShouldBeFalse)
			})

			Convey("emptying clears the persisted cart", func() {
				So(c.Empty(), ShouldBeNil)
				So(c.IsEmpty(), ShouldBeTrue)

				restored, err := Boot(bucket)
				So(err, ShouldBeNil)
				So(restored.IsEmpty(), ShouldBeTrue)
			})
		})

		Convey("storage errors are returned", func() {
			bucket.err = errors.New("session gone")

			So(c.Empty(), ShouldEqual, bucket.err)
		})
	})
}
