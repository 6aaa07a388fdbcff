package bencode_test

import (
	"fmt"
	"strings"

	"github.com/joshuapare/bencodekit/pkg/bencode"
)

func ExampleDecode() {
	root, err := bencode.Decode(strings.NewReader("d4:infod4:name5:album12:piece lengthi262144eee"))
	if err != nil {
		panic(err)
	}
	name, _ := root.Field("info").Field("name").Text()
	fmt.Println(name)
	fmt.Println(root.Field("info").Field("piece length").Int())
	fmt.Println(root.Field("info").Field("missing").Field("deeper").Exists())
	// Output:
	// album
	// 262144
	// false
}

func ExampleEncodeDictionary() {
	out, err := bencode.EncodeDictionary(bencode.DictionaryFunc(func(f *bencode.Fields) error {
		f.Integer("b", 1)
		f.Integer("a", 2)
		return nil
	}))
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))
	// Output: d1:ai2e1:bi1ee
}
