// Package metrics exposes the Prometheus collectors of the node.
package metrics

const namespace = "chainsync"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown(label string) string {
	if label == "" {
		return "unknown"
	}
	return label
}
