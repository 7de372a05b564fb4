// Package magetasks provides the build, test and lint tasks behind the
// flagwave Magefile. Each exported function backs one mage target.
package magetasks
