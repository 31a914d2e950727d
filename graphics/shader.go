package graphics

import (
	"encoding/binary"
	"math/bits"

	"github.com/cockroachdb/errors"
)

const (
	spirvMagic       = 0x07230203
	spirvHeaderWords = 5
)

// ReadSPIRV turns a SPIR-V binary into its words. Modules written with the
// opposite byte order are swapped into host order.
func ReadSPIRV(code []byte) ([]uint32, error) {
	if len(code) == 0 {
		return nil, fail(nil, ErrShaderReadFailed, "shader is empty")
	}
	if len(code)%4 != 0 {
		return nil, fail(nil, ErrShaderReadFailed, "shader is %d bytes, not a whole number of words", len(code))
	}
	if len(code) < spirvHeaderWords*4 {
		return nil, fail(nil, ErrShaderReadFailed, "shader is %d bytes, shorter than a SPIR-V header", len(code))
	}

	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[i*4:])
	}

	switch words[0] {
	case spirvMagic:
	case bits.ReverseBytes32(spirvMagic):
		for i, word := range words {
			words[i] = bits.ReverseBytes32(word)
		}
	default:
		return nil, fail(nil, ErrShaderReadFailed, "bad SPIR-V magic number %#08x", words[0])
	}

	return words, nil
}

func (c *Context) createShaderModules(cfg Config) error {
	sources := []struct {
		stage string
		code  []byte
	}{
		{"vertex", cfg.VertexShader},
		{"fragment", cfg.FragmentShader},
	}

	for _, source := range sources {
		words, err := ReadSPIRV(source.code)
		if err != nil {
			return errors.Wrapf(err, "%s shader", source.stage)
		}

		module, err := c.driver.CreateShaderModule(c.Device, words)
		if err != nil {
			return fail(err, ErrPipelineCreationFailed, "create %s shader module", source.stage)
		}

		driver, device := c.driver, c.Device
		c.releases.push(source.stage+" shader module", func() {
			driver.DestroyShaderModule(device, module)
		})
		c.ShaderModules = append(c.ShaderModules, module)
	}

	return nil
}
