package ini_test

import (
	"fmt"

	"github.com/lixenwraith/ini"
)

func Example() {
	f := ini.New()
	if err := f.UnmarshalText([]byte(`
[server]
host=localhost
port=8080
tags=a, b
`)); err != nil {
		panic(err)
	}

	port, _ := ini.GetAs[int](f.Section("server").Value("port"))

	fmt.Println(f.Get("server", "host", ""))
	fmt.Println(port)
	fmt.Println(f.Section("server").Value("tags"))
	// Output:
	// localhost
	// 8080
	// a, b
}

func ExampleBuilder() {
	f := ini.NewBuilder().
		WithDefaults(map[string]map[string]string{
			"server": {"host": "0.0.0.0", "port": "8080"},
		}).
		WithArgs([]string{"--server.host=localhost"}).
		MustBuild()

	fmt.Println(f.Get("server", "host", ""))
	fmt.Println(f.Get("server", "port", ""))
	// Output:
	// localhost
	// 8080
}
