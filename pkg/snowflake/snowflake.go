package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenObjectKey 生成对象存储的 key（base36，短且唯一）
func GenObjectKey() string {
	return node.Generate().Base36()
}
