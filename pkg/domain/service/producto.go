package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/Cristh27/SoftwareFinal/pkg/domain/model"
)

var (
	ErrProductoTienePedidos = errors.New("producto has pedidos assigned")
	ErrVarianteCiclo        = errors.New("variante assignment would create a cycle")
)

type ProductoService interface {
	ListarTodos() ([]*model.Producto, error)
	BuscarPorID(id uuid.UUID) (*model.Producto, error)
	Grabar(producto *model.Producto) (*model.Producto, error)
	Actualizar(id uuid.UUID, producto *model.Producto) (*model.Producto, error)
	Eliminar(id uuid.UUID) error
	AsignarVariante(idVariante, idProducto uuid.UUID) (*model.Producto, error)
	CrearVariante(variante *model.Producto) (*model.Producto, error)
}

func NewProductoService(repo model.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

type productoService struct {
	repo model.ProductoRepository
}

func (s *productoService) ListarTodos() ([]*model.Producto, error) {
	return s.repo.FindAll()
}

func (s *productoService) BuscarPorID(id uuid.UUID) (*model.Producto, error) {
	return s.repo.Find(id)
}

func (s *productoService) Grabar(producto *model.Producto) (*model.Producto, error) {
	if _, err := s.repo.FindByNombre(producto.Nombre); err == nil {
		return nil, model.ErrProductoNombreTaken
	} else if !errors.Is(err, model.ErrProductoNotFound) {
		return nil, err
	}

	productoID, err := s.repo.NextID()
	if err != nil {
		return nil, err
	}
	producto.ID = productoID

	if err := s.repo.Create(producto); err != nil {
		return nil, err
	}
	return producto, nil
}

// Actualizar overwrites nombre, descripcion and precio without re-checking
// nombre uniqueness. The unique index on producto.nombre still rejects a
// real collision at the store.
func (s *productoService) Actualizar(id uuid.UUID, producto *model.Producto) (*model.Producto, error) {
	existente, err := s.repo.Find(id)
	if err != nil {
		return nil, err
	}

	existente.Nombre = producto.Nombre
	existente.Descripcion = producto.Descripcion
	existente.Precio = producto.Precio

	if err := s.repo.Update(existente); err != nil {
		return nil, err
	}
	return existente, nil
}

func (s *productoService) Eliminar(id uuid.UUID) error {
	if _, err := s.repo.Find(id); err != nil {
		return err
	}

	count, err := s.repo.CountPedidos(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrProductoTienePedidos
	}

	return s.repo.Delete(id)
}

func (s *productoService) AsignarVariante(idVariante, idProducto uuid.UUID) (*model.Producto, error) {
	variante, err := s.repo.Find(idVariante)
	if err != nil {
		return nil, err
	}

	producto, err := s.repo.Find(idProducto)
	if err != nil {
		return nil, err
	}

	if err := s.checkVarianteCiclo(producto.ID, variante); err != nil {
		return nil, err
	}

	producto.VarianteID = &variante.ID
	if err := s.repo.Update(producto); err != nil {
		return nil, err
	}
	return producto, nil
}

func (s *productoService) CrearVariante(variante *model.Producto) (*model.Producto, error) {
	varianteID, err := s.repo.NextID()
	if err != nil {
		return nil, err
	}
	variante.ID = varianteID

	if err := s.repo.Create(variante); err != nil {
		return nil, err
	}
	return variante, nil
}

// checkVarianteCiclo walks the variante chain starting at the candidate and
// rejects the assignment if the chain reaches the target producto (which
// includes assigning a producto as its own variante).
func (s *productoService) checkVarianteCiclo(productoID uuid.UUID, variante *model.Producto) error {
	visitados := map[uuid.UUID]bool{}
	actual := variante
	for {
		if actual.ID == productoID {
			return ErrVarianteCiclo
		}
		if visitados[actual.ID] {
			// chain already loops somewhere upstream
			return ErrVarianteCiclo
		}
		visitados[actual.ID] = true

		if actual.VarianteID == nil {
			return nil
		}
		siguiente, err := s.repo.Find(*actual.VarianteID)
		if errors.Is(err, model.ErrProductoNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		actual = siguiente
	}
}
