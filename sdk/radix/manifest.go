package radix

import (
	"fmt"
	"strings"
)

const (
	accountPrefix   = "account_"
	componentPrefix = "component_"
)

// validateAddress checks that addr is a bech32m encoded entity address with the given type prefix.
func validateAddress(addr, prefix string) error {
	if !strings.HasPrefix(addr, prefix) {
		return fmt.Errorf("address %q must start with %q", addr, prefix)
	}
	sep := strings.LastIndexByte(addr, '1')
	if sep <= len(prefix) || sep == len(addr)-1 {
		return fmt.Errorf("address %q is not bech32m encoded", addr)
	}
	for _, r := range addr {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return fmt.Errorf("address %q contains invalid character %q", addr, r)
		}
	}

	return nil
}

func quote(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}

// buildManifest locks feeLimit XRD on the account and passes the proof to the component
// method.
func buildManifest(account, component, method, proof string, feeLimit uint64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CALL_METHOD\n    Address(%s)\n    \"lock_fee\"\n    Decimal(\"%d\")\n;\n", quote(account), feeLimit)
	fmt.Fprintf(&b, "CALL_METHOD\n    Address(%s)\n    %s\n    %s\n;\n", quote(component), quote(method), quote(proof))

	return b.String()
}
