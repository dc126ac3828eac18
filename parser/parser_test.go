package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rchillyard/tableparser/internal/cellparse"
	"github.com/rchillyard/tableparser/internal/header"
	"github.com/rchillyard/tableparser/parser"
)

type Person struct {
	ID   int64
	Name string
	Rate float64
}

func TestRecord3BasicParse(t *testing.T) {
	h, err := header.New([]string{"a", "b", "c"})
	require.NoError(t, err)

	p := parser.Record3(
		func(id int64, name string, rate float64) Person {
			return Person{ID: id, Name: name, Rate: rate}
		},
		parser.Scalar("a", cellparse.Int64()),
		parser.Scalar("b", cellparse.String()),
		parser.Scalar("c", cellparse.Float64()),
	)

	got, err := p.Parse(h, []string{"1", "hello", "2.5"})
	require.NoError(t, err)
	assert.Equal(t, Person{ID: 1, Name: "hello", Rate: 2.5}, got)
}

func TestRecordMissingRequiredColumn(t *testing.T) {
	h, err := header.New([]string{"a", "b"})
	require.NoError(t, err)

	p := parser.Record3(
		func(id int64, name string, rate float64) Person {
			return Person{ID: id, Name: name, Rate: rate}
		},
		parser.Scalar("a", cellparse.Int64()),
		parser.Scalar("b", cellparse.String()),
		parser.Scalar("c", cellparse.Float64()),
	)

	_, err = p.Parse(h, []string{"1", "hello"})
	require.Error(t, err)
}

type Address struct {
	Street string
	Zip    string
}

type Contact struct {
	Name string
	Addr Address
}

func TestNestedRecordParse(t *testing.T) {
	h, err := header.New([]string{"name", "addr.street", "addr.zip"})
	require.NoError(t, err)

	addrParser := parser.Record2(
		func(street, zip string) Address { return Address{Street: street, Zip: zip} },
		parser.Scalar("street", cellparse.String()),
		parser.Scalar("zip", cellparse.String()),
	)

	p := parser.Record2(
		func(name string, addr Address) Contact { return Contact{Name: name, Addr: addr} },
		parser.Scalar("name", cellparse.String()),
		parser.Nested("addr", addrParser),
	)

	got, err := p.Parse(h, []string{"Ada", "Main St", "10001"})
	require.NoError(t, err)
	assert.Equal(t, Contact{Name: "Ada", Addr: Address{Street: "Main St", Zip: "10001"}}, got)
}

func TestColumnHelperAlias(t *testing.T) {
	h, err := header.New([]string{"full_name"})
	require.NoError(t, err)

	p := parser.Record1(
		func(name string) Person { return Person{Name: name} },
		parser.Scalar("name", cellparse.String(), "name", "full_name"),
	)

	got, err := p.Parse(h, []string{"Grace"})
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.Name)
}
