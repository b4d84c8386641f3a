package argm_test

import (
	"fmt"

	"github.com/lwmacct/251220-go-pkg-argm/pkg/argm"
)

// ExampleResolve 演示按优先级解析参数
func ExampleResolve() {
	args, err := argm.Resolve("server",
		map[string]any{
			"addr":    ":9090",
			"timeout": nil,
			"debug":   nil,
		},
		argm.WithPriority(argm.EnvPriority),
		argm.WithEnvPrefix("MYAPP"),
		argm.WithConfigData("yaml", []byte("server:\n  debug: false\n")),
		argm.WithEnvironment(argm.MapEnv{"MYAPP_ADDR": ":8080"}),
		argm.WithDefaults(argm.Override{Name: "timeout", Default: 30}),
	)
	if err != nil {
		fmt.Println("解析失败:", err)
		return
	}

	for _, key := range args.Keys() {
		fmt.Printf("%s=%v (%s)\n", key, args.Get(key), args.Source(key))
	}

	// Output:
	// addr=:8080 (env)
	// debug=false (config)
	// timeout=30 (default)
}

// ExampleBind 演示将结果绑定到目标，已存在的属性不会被覆盖
func ExampleBind() {
	args, _ := argm.Resolve("worker", map[string]any{"retries": 3},
		argm.WithConfig(nil),
		argm.WithEnvironment(argm.MapEnv{}),
	)

	target := argm.MapTarget{}
	if err := argm.Bind(target, args, true); err != nil {
		fmt.Println(err)
	}
	fmt.Println(target["_retries"])

	err := argm.Bind(target, args, true)
	fmt.Println(err)

	// Output:
	// 3
	// attribute already exists: _retries
}

// ExampleParsePriority 演示自定义优先级
func ExampleParsePriority() {
	p, _ := argm.ParsePriority("arg,default")
	fmt.Println(p)
	fmt.Println(p.Contains(argm.SourceEnv))

	// Output:
	// arg,default
	// false
}
